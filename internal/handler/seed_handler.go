package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/service"
)

// SeedHandler handles first-admin seeding.
type SeedHandler struct {
	authService service.AuthService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(authService service.AuthService) *SeedHandler {
	return &SeedHandler{authService: authService}
}

// SeedAdminResponse represents the seed response.
type SeedAdminResponse struct {
	OK      bool   `json:"ok"`
	ID      string `json:"id"`
	Email   string `json:"email"`
	Created bool   `json:"created"`
}

// SeedAdmin godoc
// @Summary Create the first admin
// @Description Only available while ALLOW_SEED is enabled. Seeding an existing email changes nothing.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Admin credentials"
// @Success 200 {object} SeedAdminResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/seed-admin [post]
func (h *SeedHandler) SeedAdmin(c echo.Context) error {
	// the gate is checked before the body so a disabled seed always answers 403
	if !h.authService.SeedEnabled() {
		return respondError(errors.ErrSeedDisabled)
	}

	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	admin, created, err := h.authService.SeedAdmin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, SeedAdminResponse{
		OK:      true,
		ID:      admin.ID,
		Email:   admin.Email,
		Created: created,
	})
}
