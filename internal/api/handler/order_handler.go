package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kitenge-atelier/storefront/internal/api/metrics"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

const (
	HeaderIdempotencyKey     = "Idempotency-Key"
	HeaderIdempotentReplayed = "Idempotent-Replayed"
)

type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create accepts a custom-order request. The order always starts pending
// with no estimated price. A repeated Idempotency-Key returns the order the
// key first produced.
//
// @Summary      Submit a custom order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string              false  "Client retry key"
// @Param        body             body      createOrderRequest  true   "Order"
// @Success      201              {object}  domain.CustomOrder
// @Failure      400              {object}  ErrorResponse
// @Failure      409              {object}  ErrorResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /api/custom-orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := bind(c, &req, "Invalid order data"); err != nil {
		return err
	}
	if err := validate(c, &req, "Invalid order data"); err != nil {
		return err
	}

	key := strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey))
	res, err := h.orders.Create(c.Request().Context(), req.toDomain(), key)
	if err != nil {
		return err
	}

	if res.Replayed {
		c.Response().Header().Set(HeaderIdempotentReplayed, "true")
	}
	metrics.CustomOrdersTotal.WithLabelValues(strconv.FormatBool(res.Replayed)).Inc()
	return c.JSON(http.StatusCreated, res.Order)
}

// List returns every custom order. Mounted publicly and under /api/admin.
//
// @Summary      List custom orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}   domain.CustomOrder
// @Failure      500  {object}  ErrorResponse
// @Router       /api/custom-orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get returns one custom order.
//
// @Summary      Get a custom order
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  domain.CustomOrder
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/admin/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orders.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Update sets the status and/or estimated price of an order.
//
// @Summary      Update a custom order
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Order ID"
// @Param        body  body      updateOrderRequest  true  "Status and/or estimated price"
// @Success      200   {object}  domain.CustomOrder
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/admin/orders/{id} [patch]
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := bind(c, &req, "Invalid order data"); err != nil {
		return err
	}
	if err := validate(c, &req, "Invalid order data"); err != nil {
		return err
	}

	order, err := h.orders.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}

	metrics.OrderUpdatesTotal.WithLabelValues(string(order.Status)).Inc()
	return c.JSON(http.StatusOK, order)
}
