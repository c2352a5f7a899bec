package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/kitenge-atelier/storefront/internal/api/handler"
	"github.com/kitenge-atelier/storefront/internal/api/middleware"
	"github.com/kitenge-atelier/storefront/internal/core/domain"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

// Deps is everything the router needs. Services are built by the caller so
// tests can hand in a fresh store per case.
type Deps struct {
	Logger       zerolog.Logger
	Catalog      ports.CatalogService
	Orders       ports.OrderService
	Contacts     ports.ContactService
	Auth         ports.AuthService
	Analytics    ports.AnalyticsReader
	ExchangeRate domain.ExchangeRate
	// Health lists the dependencies pinged by /health/ready.
	Health map[string]handler.Pinger
	// Registerer enables per-request HTTP metrics. Nil leaves them off,
	// which keeps repeated router construction in tests from re-registering.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	if d.Registerer != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  "storefront",
			Registerer: d.Registerer,
		}))
	}

	// --- Handlers ---
	products := handler.NewProductHandler(d.Catalog)
	orders := handler.NewOrderHandler(d.Orders)
	contacts := handler.NewContactHandler(d.Contacts)
	auth := handler.NewAuthHandler(d.Auth)
	analytics := handler.NewAnalyticsHandler(d.Analytics)
	exchange := handler.NewExchangeHandler(d.ExchangeRate)
	health := handler.NewHealthHandler(d.Health)

	// --- Public storefront ---
	e.GET("/api/products", products.List)
	e.GET("/api/products/category/:category", products.ListByCategory)
	e.GET("/api/products/:id", products.Get)
	e.POST("/api/custom-orders", orders.Create)
	e.GET("/api/custom-orders", orders.List)
	e.POST("/api/contacts", contacts.Submit)
	e.GET("/api/exchange-rate", exchange.Get)
	e.POST("/api/admin/login", auth.Login)

	// --- Admin console (bearer token required) ---
	admin := e.Group("/api/admin", middleware.AdminAuth(d.Auth), middleware.RequireAdmin())
	admin.GET("/session", auth.Session)
	admin.GET("/products", products.List)
	admin.POST("/products", products.Create)
	admin.PATCH("/products/:id", products.Update)
	admin.DELETE("/products/:id", products.Delete)
	admin.GET("/orders", orders.List)
	admin.GET("/orders/:id", orders.Get)
	admin.PATCH("/orders/:id", orders.Update)
	admin.GET("/contacts", contacts.List)
	admin.GET("/analytics", analytics.Get)

	// --- Operations ---
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
