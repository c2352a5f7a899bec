package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

type stubAuthenticator struct {
	token string
	calls int
}

func (s *stubAuthenticator) Authenticate(token string) (*ports.AdminIdentity, error) {
	s.calls++
	if token != s.token {
		return nil, errors.New("bad token")
	}
	return &ports.AdminIdentity{Username: "admin", IsAdmin: true}, nil
}

func runAdminAuth(t *testing.T, auth Authenticator, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := AdminAuth(auth)(func(c echo.Context) error {
		called = true
		admin, ok := AdminFrom(c)
		if !ok || admin.Username != "admin" {
			t.Fatalf("admin identity not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAdminAuth_ValidToken(t *testing.T) {
	rec, called := runAdminAuth(t, &stubAuthenticator{token: "admin-token"}, "Bearer admin-token")

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminAuth_SchemeIsCaseInsensitive(t *testing.T) {
	rec, called := runAdminAuth(t, &stubAuthenticator{token: "admin-token"}, "bearer admin-token")

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got %d", rec.Code)
	}
}

func TestAdminAuth_MissingHeader(t *testing.T) {
	auth := &stubAuthenticator{token: "admin-token"}
	rec, called := runAdminAuth(t, auth, "")

	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if auth.calls != 0 {
		t.Fatalf("authenticator should not be consulted without a header")
	}
}

func TestAdminAuth_InvalidHeaderFormat(t *testing.T) {
	for _, header := range []string{"Token admin-token", "admin-token", "Bearer "} {
		rec, called := runAdminAuth(t, &stubAuthenticator{token: "admin-token"}, header)
		if called {
			t.Fatalf("%q: should not reach next", header)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAdminAuth_WrongToken(t *testing.T) {
	rec, called := runAdminAuth(t, &stubAuthenticator{token: "admin-token"}, "Bearer nope")

	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
