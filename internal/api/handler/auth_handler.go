package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitenge-atelier/storefront/internal/api/metrics"
	"github.com/kitenge-atelier/storefront/internal/core/domain"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginResponse struct {
	Token string               `json:"token"`
	User  *ports.AdminIdentity `json:"user"`
}

type sessionResponse struct {
	User *ports.AdminIdentity `json:"user"`
}

// Login exchanges the admin credentials for a bearer token.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /api/admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.AdminLoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.AdminLoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Session reports the admin the bearer token belongs to.
//
// @Summary      Current admin session
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /api/admin/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: admin})
}
