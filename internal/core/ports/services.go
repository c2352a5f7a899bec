package ports

import (
	"context"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
)

// CatalogService exposes product reads and admin product management.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in domain.NewProduct) (*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// CreateOrderResult carries the order and whether it was replayed from a
// previous request with the same idempotency key.
type CreateOrderResult struct {
	Order    *domain.CustomOrder
	Replayed bool
}

// OrderService handles custom-order intake and admin order updates.
type OrderService interface {
	Create(ctx context.Context, in domain.NewCustomOrder, idempotencyKey string) (*CreateOrderResult, error)
	List(ctx context.Context) ([]domain.CustomOrder, error)
	Get(ctx context.Context, id string) (*domain.CustomOrder, error)
	Update(ctx context.Context, id string, patch domain.CustomOrderPatch) (*domain.CustomOrder, error)
}

// ContactService handles contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, in domain.NewContact) (*domain.Contact, error)
	List(ctx context.Context) ([]domain.Contact, error)
}

// AdminIdentity is the authenticated admin as shown to the console.
type AdminIdentity struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// AuthService authenticates the admin console.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *AdminIdentity, error)
	Authenticate(token string) (*AdminIdentity, error)
}

// TokenAuthority issues and checks admin bearer tokens.
type TokenAuthority interface {
	Issue(username string) (string, error)
	// Verify returns the username the token was issued to, or
	// domain.ErrUnauthorized.
	Verify(token string) (string, error)
}

// IdempotencyStore remembers which entity a client-supplied key produced.
type IdempotencyStore interface {
	// Reserve claims key for a request in flight. It reports false when the
	// key is already claimed or recorded.
	Reserve(ctx context.Context, scope, key string) (bool, error)
	// Lookup returns the recorded id. A found key with an empty id is still
	// reserved by a request that has not finished.
	Lookup(ctx context.Context, scope, key string) (string, bool, error)
	// Remember records id for key, replacing a reservation or stale record.
	Remember(ctx context.Context, scope, key, id string) error
	// Release drops a reservation whose request failed.
	Release(ctx context.Context, scope, key string) error
}
