package auth

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apperrors "portfolio/internal/errors"
)

// ContextKey is the echo context key holding the verified *Claims.
const ContextKey = "admin"

var (
	bearerPattern    = regexp.MustCompile(`(?i)^Bearer\s+(\S+)$`)
	errMissingBearer = errors.New("missing or malformed bearer token")
)

// bearerExtractor accepts only "Bearer <token>" (any case, any run of spaces).
func bearerExtractor(c echo.Context) ([]string, error) {
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	m := bearerPattern.FindStringSubmatch(header)
	if m == nil {
		return nil, errMissingBearer
	}
	return []string{m[1]}, nil
}

// Middleware rejects requests without a valid bearer token. Every failure
// produces the same 401 body. Verified claims are stored under ContextKey
// and on the request context; the admin store is not consulted.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:       ContextKey,
		TokenLookupFuncs: []middleware.ValuesExtractor{bearerExtractor},
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			req := c.Request()
			c.SetRequest(req.WithContext(WithClaims(req.Context(), claims)))
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthorized)
			return echo.NewHTTPError(http.StatusUnauthorized, httpErr.ToErrorResponse()).SetInternal(fmt.Errorf("bearer auth: %w", err))
		},
	})
}

// ClaimsFromEcho returns the claims stored by Middleware.
func ClaimsFromEcho(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ContextKey).(*Claims)
	return claims, ok && claims != nil
}
