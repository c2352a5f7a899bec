package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitenge-atelier/storefront/internal/api/middleware"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

// ctxAdmin returns the identity injected by the AdminAuth middleware. A
// missing identity means the route was mounted outside the admin group.
func ctxAdmin(c echo.Context) (*ports.AdminIdentity, error) {
	admin, ok := middleware.AdminFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return admin, nil
}

// errInvalidPayload is returned when the body is not decodable JSON.
var errInvalidPayload = echo.NewHTTPError(http.StatusBadRequest, "invalid payload")

// bind decodes the body into req. A value of the wrong JSON type becomes a
// ValidationError labelled with message; any other decode failure is
// errInvalidPayload.
func bind(c echo.Context, req any, message string) error {
	err := c.Bind(req)
	if err == nil {
		return nil
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		return &ValidationError{
			Message: message,
			Fields:  []FieldError{{Field: ute.Field, Message: ute.Field + " must be " + jsonKind(ute.Type)}},
		}
	}
	return errInvalidPayload
}
