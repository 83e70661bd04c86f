package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/service"
)

// MessageHandler handles the contact inbox.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// CreateMessageRequest represents a contact form submission.
type CreateMessageRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

// CreateMessage godoc
// @Summary Submit a contact message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body CreateMessageRequest true "Message"
// @Success 200 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) CreateMessage(c echo.Context) error {
	var req CreateMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	message, err := h.messageService.Create(c.Request().Context(), req.Name, req.Email, req.Message)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, message)
}

// ListMessages godoc
// @Summary List the most recent contact messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Message
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) ListMessages(c echo.Context) error {
	messages, err := h.messageService.List(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, messages)
}
