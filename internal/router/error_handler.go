package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "portfolio/internal/errors"
)

// ErrorHandler renders every error as an ErrorResponse. Server errors are
// logged with their cause and the client only sees a generic message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := resolve(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed",
			slog.String("error", cause(err).Error()),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "write error response", slog.String("error", err.Error()))
	}
}

func resolve(err error) (int, apperrors.ErrorResponse) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		mapped := apperrors.MapErrorToHTTP(err)
		return mapped.StatusCode, mapped.ToErrorResponse()
	}

	if he.Code >= http.StatusInternalServerError {
		return he.Code, apperrors.Internal().ToErrorResponse()
	}
	switch msg := he.Message.(type) {
	case apperrors.ErrorResponse:
		return he.Code, msg
	case string:
		return he.Code, apperrors.ErrorResponse{Error: msg, Code: apperrors.CodeForStatus(he.Code)}
	case error:
		return he.Code, apperrors.ErrorResponse{Error: msg.Error(), Code: apperrors.CodeForStatus(he.Code)}
	default:
		return he.Code, apperrors.ErrorResponse{Error: fmt.Sprint(msg), Code: apperrors.CodeForStatus(he.Code)}
	}
}

func cause(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Internal != nil {
		return he.Internal
	}
	return err
}
