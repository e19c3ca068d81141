package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/certflow/certification-system/internal/api/metrics"
	"github.com/certflow/certification-system/internal/api/middleware"
	"github.com/certflow/certification-system/internal/core/domain"
	"github.com/certflow/certification-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

type validateResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("missing_fields").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case domain.ErrMissingCredentials:
			metrics.LoginsTotal.WithLabelValues("missing_fields").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, Role: user.Role, Email: user.Email})
}

// Validate confirms the presented token resolves to a live account.
//
// @Summary      Validate the current session token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  validateResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/validate [get]
func (h *AuthHandler) Validate(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domain.ErrMissingToken
	}
	return c.JSON(http.StatusOK, validateResponse{Email: user.Email, Role: user.Role})
}

// Me returns the authenticated user's full record.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domain.ErrMissingToken
	}
	return c.JSON(http.StatusOK, user)
}

// Logout acknowledges a logout. Tokens are stateless and are not invalidated
// server-side; clients discard theirs.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully. Please clear your token."})
}
