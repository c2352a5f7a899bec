package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kitenge-atelier/storefront/internal/api/middleware"
	"github.com/kitenge-atelier/storefront/internal/core/domain"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *ports.AdminIdentity, error) {
			if username != "admin" || password != "admin123" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "admin-token", &ports.AdminIdentity{Username: "admin", IsAdmin: true}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(http.MethodPost, "/api/admin/login", `{"username":"admin","password":"admin123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "admin-token" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "admin" || user["isAdmin"] != true {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *ports.AdminIdentity, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(http.MethodPost, "/api/admin/login", `{"username":"admin","password":"bad"}`)
	err := h.Login(c)

	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("nothing should be written on failure, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *ports.AdminIdentity, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newContext(http.MethodPost, "/api/admin/login", "{")
	err := h.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newContext(http.MethodGet, "/api/admin/session", "")
	called := false
	mw := middleware.AdminAuth(authFunc(func(token string) (*ports.AdminIdentity, error) {
		called = true
		return &ports.AdminIdentity{Username: "admin", IsAdmin: true}, nil
	}))
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer admin-token")

	if err := mw(h.Session)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("authenticator not consulted")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "{\"user\":{\"username\":\"admin\",\"isAdmin\":true}}\n" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestAuthHandler_Session_WithoutMiddleware(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newContext(http.MethodGet, "/api/admin/session", "")
	err := h.Session(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

type authFunc func(token string) (*ports.AdminIdentity, error)

func (f authFunc) Authenticate(token string) (*ports.AdminIdentity, error) { return f(token) }
