// Package memory is the process-local Storage driver. All state lives in the
// owning Store and is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

var _ ports.Storage = (*Store)(nil)

// Store holds the four entity collections behind a single RWMutex. Every
// method completes without blocking on I/O and only ever returns a
// domain not-found sentinel as an error.
type Store struct {
	mu       sync.RWMutex
	users    *collection[domain.User]
	products *collection[domain.Product]
	orders   *collection[domain.CustomOrder]
	contacts *collection[domain.Contact]

	newID func() string
	now   func() time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		users:    newCollection[domain.User](),
		products: newCollection[domain.Product](),
		orders:   newCollection[domain.CustomOrder](),
		contacts: newCollection[domain.Contact](),
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// --- Users ---

func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users.values() {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *Store) CreateUser(_ context.Context, in domain.NewUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := domain.User{
		ID:       s.newID(),
		Username: in.Username,
		Password: in.Password,
		IsAdmin:  domain.DefaultIsAdmin,
	}
	s.users.put(u.ID, u)
	return &u, nil
}

// --- Products ---

func (s *Store) GetProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.products.values()
	for i := range all {
		all[i] = all[i].Clone()
	}
	return all, nil
}

func (s *Store) GetProductsByCategory(_ context.Context, category string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0)
	for _, p := range s.products.values() {
		if p.Category == category {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (s *Store) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products.get(id)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p = p.Clone()
	return &p, nil
}

func (s *Store) CreateProduct(_ context.Context, in domain.NewProduct) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := in.Build(s.newID(), s.now())
	s.products.put(p.ID, p)
	out := p.Clone()
	return &out, nil
}

func (s *Store) UpdateProduct(_ context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.products.get(id)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	merged := patch.Apply(existing)
	s.products.put(id, merged)
	out := merged.Clone()
	return &out, nil
}

func (s *Store) DeleteProduct(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.products.remove(id), nil
}

// --- Custom orders ---

func (s *Store) GetCustomOrders(_ context.Context) ([]domain.CustomOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.orders.values()
	for i := range all {
		all[i] = all[i].Clone()
	}
	return all, nil
}

func (s *Store) GetCustomOrder(_ context.Context, id string) (*domain.CustomOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders.get(id)
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o = o.Clone()
	return &o, nil
}

func (s *Store) CreateCustomOrder(_ context.Context, in domain.NewCustomOrder) (*domain.CustomOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := in.Build(s.newID(), s.now())
	s.orders.put(o.ID, o)
	out := o.Clone()
	return &out, nil
}

func (s *Store) UpdateCustomOrder(_ context.Context, id string, patch domain.CustomOrderPatch) (*domain.CustomOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.orders.get(id)
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	merged := patch.Apply(existing)
	s.orders.put(id, merged)
	out := merged.Clone()
	return &out, nil
}

// --- Contacts ---

func (s *Store) GetContacts(_ context.Context) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.contacts.values(), nil
}

func (s *Store) CreateContact(_ context.Context, in domain.NewContact) (*domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := in.Build(s.newID(), s.now())
	s.contacts.put(c.ID, c)
	return &c, nil
}

// --- Analytics ---

// GetAnalytics scans the current collections under one read lock, so the
// per-status order counts always add up to TotalOrders.
func (s *Store) GetAnalytics(_ context.Context) (domain.Analytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := domain.Analytics{
		TotalProducts: s.products.len(),
		TotalOrders:   s.orders.len(),
		TotalContacts: s.contacts.len(),
	}
	for _, o := range s.orders.values() {
		a.Count(o.Status)
	}
	return a, nil
}
