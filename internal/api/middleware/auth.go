package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

const adminKey = "admin"

// Authenticator resolves a bearer token to an admin identity.
type Authenticator interface {
	Authenticate(token string) (*ports.AdminIdentity, error)
}

// AdminAuth rejects requests without a valid admin bearer token before the
// handler runs, and injects the identity into the context.
func AdminAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			admin, err := auth.Authenticate(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			c.Set(adminKey, admin)
			return next(c)
		}
	}
}

// AdminFrom returns the identity set by AdminAuth.
func AdminFrom(c echo.Context) (*ports.AdminIdentity, bool) {
	admin, ok := c.Get(adminKey).(*ports.AdminIdentity)
	return admin, ok && admin != nil
}
