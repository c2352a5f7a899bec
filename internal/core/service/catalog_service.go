package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

// CatalogService implements ports.CatalogService on top of a ProductRepository.
type CatalogService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.GetProducts(ctx)
}

func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.GetProductsByCategory(ctx, category)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	p, err := s.repo.CreateProduct(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("product_id", p.ID).
		Str("category", p.Category).
		Int("price_kes", p.PriceKES).
		Msg("product created")
	return p, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	p, err := s.repo.UpdateProduct(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("product_id", id).Msg("product updated")
	return p, nil
}

// Delete removes a product, returning domain.ErrProductNotFound when nothing
// was there to delete.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrProductNotFound
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
