package ports

import (
	"context"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
)

// UserRepository stores accounts. Usernames are unique by convention only;
// callers that need uniqueness check GetUserByUsername first.
type UserRepository interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// GetUserByUsername returns the first user with that username in insertion
	// order, or domain.ErrUserNotFound.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error)
}

// ProductRepository stores the catalog. Lists follow insertion order.
type ProductRepository interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	// GetProductsByCategory is an exact, case-sensitive match on category.
	GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error)
	// UpdateProduct shallow-merges patch and returns the merged record, or
	// domain.ErrProductNotFound.
	UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	// DeleteProduct reports whether a record was removed.
	DeleteProduct(ctx context.Context, id string) (bool, error)
}

// CustomOrderRepository stores made-to-measure orders. Orders are never deleted.
type CustomOrderRepository interface {
	GetCustomOrders(ctx context.Context) ([]domain.CustomOrder, error)
	GetCustomOrder(ctx context.Context, id string) (*domain.CustomOrder, error)
	// CreateCustomOrder always stores the order as pending with no price.
	CreateCustomOrder(ctx context.Context, in domain.NewCustomOrder) (*domain.CustomOrder, error)
	UpdateCustomOrder(ctx context.Context, id string, patch domain.CustomOrderPatch) (*domain.CustomOrder, error)
}

// ContactRepository stores contact-form submissions. Contacts are immutable.
type ContactRepository interface {
	GetContacts(ctx context.Context) ([]domain.Contact, error)
	CreateContact(ctx context.Context, in domain.NewContact) (*domain.Contact, error)
}

// AnalyticsReader computes the dashboard aggregate from current state.
type AnalyticsReader interface {
	GetAnalytics(ctx context.Context) (domain.Analytics, error)
}

// Storage is the single source of truth for every collection.
type Storage interface {
	UserRepository
	ProductRepository
	CustomOrderRepository
	ContactRepository
	AnalyticsReader
}
