package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (string, *ports.AdminIdentity, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *ports.AdminIdentity, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Authenticate(string) (*ports.AdminIdentity, error) {
	return nil, errors.New("not used")
}

type stubCatalog struct {
	ports.CatalogService
	createFn func(ctx context.Context, in domain.NewProduct) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCatalog) Create(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

func (s *stubCatalog) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubCatalog) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubOrders struct {
	ports.OrderService
	createFn func(ctx context.Context, in domain.NewCustomOrder, key string) (*ports.CreateOrderResult, error)
	updateFn func(ctx context.Context, id string, patch domain.CustomOrderPatch) (*domain.CustomOrder, error)
}

func (s *stubOrders) Create(ctx context.Context, in domain.NewCustomOrder, key string) (*ports.CreateOrderResult, error) {
	return s.createFn(ctx, in, key)
}

func (s *stubOrders) Update(ctx context.Context, id string, patch domain.CustomOrderPatch) (*domain.CustomOrder, error) {
	return s.updateFn(ctx, id, patch)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
