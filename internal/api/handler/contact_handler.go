package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitenge-atelier/storefront/internal/api/metrics"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

type ContactHandler struct {
	contacts ports.ContactService
}

func NewContactHandler(contacts ports.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit stores a contact-form message.
//
// @Summary      Send a contact message
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      createContactRequest  true  "Message"
// @Success      201   {object}  domain.Contact
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/contacts [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req createContactRequest
	if err := bind(c, &req, "Invalid contact data"); err != nil {
		return err
	}
	if err := validate(c, &req, "Invalid contact data"); err != nil {
		return err
	}

	contact, err := h.contacts.Submit(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	metrics.ContactsReceivedTotal.Inc()
	return c.JSON(http.StatusCreated, contact)
}

// List returns every contact message.
//
// @Summary      List contact messages
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Contact
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/admin/contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.contacts.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}
