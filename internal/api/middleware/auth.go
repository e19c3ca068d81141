package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/certflow/certification-system/internal/core/domain"
	"github.com/certflow/certification-system/internal/core/ports"
)

// userKey is the echo.Context key under which the guard stores the resolved user.
const userKey = "user"

// Guard validates the bearer token, resolves the claims to a live account in
// the directory, and injects the full user record into the context. Resolving
// against the directory (not just the claims) covers tokens that outlive an
// account and keeps the role authoritative for downstream handlers.
func Guard(auth ports.AuthService, directory ports.UserDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrMissingToken
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrMissingToken
			}

			claims, err := auth.Verify(parts[1])
			if err != nil {
				return domain.ErrInvalidToken
			}

			user, err := directory.FindByEmail(c.Request().Context(), claims.Email)
			if err != nil {
				return domain.ErrUserNotFound
			}

			c.Set(userKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user stored by Guard, or nil when the middleware
// did not run.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userKey).(*domain.User)
	return user
}
