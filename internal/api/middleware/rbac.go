package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin lets the request through only when AdminAuth injected an
// identity carrying the admin flag.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin, ok := AdminFrom(c)
			if !ok || !admin.IsAdmin {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			return next(c)
		}
	}
}
