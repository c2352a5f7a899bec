package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

type AnalyticsHandler struct {
	reader ports.AnalyticsReader
}

func NewAnalyticsHandler(reader ports.AnalyticsReader) *AnalyticsHandler {
	return &AnalyticsHandler{reader: reader}
}

// Get returns the dashboard counters, computed from current state.
//
// @Summary      Dashboard analytics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Analytics
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/admin/analytics [get]
func (h *AnalyticsHandler) Get(c echo.Context) error {
	analytics, err := h.reader.GetAnalytics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analytics)
}

// ExchangeHandler serves the fixed KES/USD rate.
type ExchangeHandler struct {
	rate domain.ExchangeRate
}

func NewExchangeHandler(rate domain.ExchangeRate) *ExchangeHandler {
	return &ExchangeHandler{rate: rate}
}

// Get returns the exchange rate.
//
// @Summary      KES/USD exchange rate
// @Tags         currency
// @Produce      json
// @Success      200  {object}  domain.ExchangeRate
// @Router       /api/exchange-rate [get]
func (h *ExchangeHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.rate)
}
