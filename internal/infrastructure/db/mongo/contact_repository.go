package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
)

func (s *Store) GetContacts(ctx context.Context) ([]domain.Contact, error) {
	return findAll[domain.Contact](ctx, s.contacts, bson.M{})
}

func (s *Store) CreateContact(ctx context.Context, in domain.NewContact) (*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := in.Build(s.newID(), s.now())
	if _, err := s.contacts.InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return &c, nil
}
