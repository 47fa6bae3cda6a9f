package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskvault/task-api/internal/api/metrics"
	"github.com/taskvault/task-api/internal/api/middleware"
	"github.com/taskvault/task-api/internal/core/domain"
	"github.com/taskvault/task-api/internal/core/ports"
)

// AuthHandler handles HTTP requests for account registration and sessions.
type AuthHandler struct {
	authService ports.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// Register creates a new user account.
//
// @Summary      Register a new user account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  userProfile
// @Failure      400   {object}  problemDetails
// @Failure      500   {object}  problemDetails
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Username, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, toUserProfile(user))
}

// Login authenticates a user and returns a JWT access token.
//
// @Summary      Login and receive a JWT access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  problemDetails
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.AuthFailuresTotal.WithLabelValues("invalid_credentials").Inc()
		}
		return err
	}

	metrics.LoginsTotal.Inc()
	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserProfile(user),
	})
}

// Logout records the logout for auditing. Tokens are stateless, so the
// client discards the token; nothing is invalidated server-side.
//
// @Summary      Logout (security logging only)
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  logoutResponse
// @Failure      401  {object}  problemDetails
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	user := middleware.UserFromContext(c)
	h.logger.Info().Str("user_id", user.ID.String()).Str("email", user.Email).Msg("user logged out")
	return c.JSON(http.StatusOK, logoutResponse{Message: "Successfully logged out"})
}

// Me returns the authenticated user's profile.
//
// @Summary      Get the current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userProfile
// @Failure      401  {object}  problemDetails
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.UserFromContext(c)
	return c.JSON(http.StatusOK, toUserProfile(user))
}
