package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
)

func (s *Store) GetCustomOrders(ctx context.Context) ([]domain.CustomOrder, error) {
	return findAll[domain.CustomOrder](ctx, s.orders, bson.M{})
}

func (s *Store) GetCustomOrder(ctx context.Context, id string) (*domain.CustomOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.CustomOrder
	if err := s.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find custom order: %w", err)
	}
	return &o, nil
}

func (s *Store) CreateCustomOrder(ctx context.Context, in domain.NewCustomOrder) (*domain.CustomOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	o := in.Build(s.newID(), s.now())
	if _, err := s.orders.InsertOne(ctx, o); err != nil {
		return nil, fmt.Errorf("insert custom order: %w", err)
	}
	return &o, nil
}

func (s *Store) UpdateCustomOrder(ctx context.Context, id string, patch domain.CustomOrderPatch) (*domain.CustomOrder, error) {
	set := bson.M{}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.EstimatedPrice != nil {
		set["estimated_price"] = *patch.EstimatedPrice
	}
	if len(set) == 0 {
		return s.GetCustomOrder(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.CustomOrder
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.orders.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("update custom order: %w", err)
	}
	return &o, nil
}
