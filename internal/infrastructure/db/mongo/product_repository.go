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

func (s *Store) GetProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := findAll[domain.Product](ctx, s.products, bson.M{})
	if err != nil {
		return nil, err
	}
	return normalizeProducts(products), nil
}

func (s *Store) GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := findAll[domain.Product](ctx, s.products, bson.M{"category": category})
	if err != nil {
		return nil, err
	}
	return normalizeProducts(products), nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Product
	if err := s.products.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	normalizeProduct(&p)
	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p := in.Build(s.newID(), s.now())
	if _, err := s.products.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return &p, nil
}

// UpdateProduct applies the patch as a single $set. An empty patch is a read.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	set := productSet(patch)
	if len(set) == 0 {
		return s.GetProduct(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Product
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.products.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	normalizeProduct(&p)
	return &p, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func productSet(patch domain.ProductPatch) bson.M {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.PriceKES != nil {
		set["price_kes"] = *patch.PriceKES
	}
	if patch.Images != nil {
		images := *patch.Images
		if images == nil {
			images = []string{}
		}
		set["images"] = images
	}
	if patch.AvailableSizes != nil {
		set["available_sizes"] = *patch.AvailableSizes
	}
	if patch.FabricOptions != nil {
		set["fabric_options"] = *patch.FabricOptions
	}
	if patch.InStock != nil {
		set["in_stock"] = *patch.InStock
	}
	if patch.Featured != nil {
		set["featured"] = *patch.Featured
	}
	return set
}

// normalizeProduct restores the non-null images default for documents written
// by other tools.
func normalizeProduct(p *domain.Product) {
	if p.Images == nil {
		p.Images = []string{}
	}
}

func normalizeProducts(ps []domain.Product) []domain.Product {
	for i := range ps {
		normalizeProduct(&ps[i])
	}
	return ps
}
