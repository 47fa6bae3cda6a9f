package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/task-api/internal/api/metrics"
	"github.com/taskvault/task-api/internal/core/domain"
	"github.com/taskvault/task-api/internal/core/ports"
)

// userContextKey is where the resolved account is stored on the echo context.
const userContextKey = "auth_user"

// Auth validates the bearer token and loads the account it identifies.
// The resolved *domain.User is injected into the request context; a token
// whose user no longer exists (deleted account) is rejected the same way as
// an invalid token.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := tokens.ExtractUserID(parts[1])
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired authentication token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
				}
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the account resolved by Auth, or nil when the
// middleware did not run.
func UserFromContext(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}

// SetUser injects a resolved account into the context the same way Auth
// does. Exists so handler tests can run without the middleware.
func SetUser(c echo.Context, user *domain.User) {
	c.Set(userContextKey, user)
}
