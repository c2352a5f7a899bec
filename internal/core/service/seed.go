package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

// SampleCatalog is the fixture loaded into an empty catalog at start-up.
// Categories follow the "{gender}-{category}" keys used by the shop pages.
func SampleCatalog() []domain.NewProduct {
	stock := func(n int) *int { return &n }
	featured := domain.FlagTrue

	return []domain.NewProduct{
		{
			Name:           "Ankara Midi Dress",
			Description:    "Traditional print, modern silhouette",
			Category:       "womens-dresses",
			Type:           domain.ProductReady,
			PriceKES:       15500,
			Images:         []string{"product1"},
			AvailableSizes: []string{"S", "M", "L"},
			FabricOptions:  []string{"Ankara Cotton"},
			InStock:        stock(5),
			Featured:       &featured,
		},
		{
			Name:           "Kitenge Shirt",
			Description:    "Casual elegance for any occasion",
			Category:       "mens-shirts",
			Type:           domain.ProductReady,
			PriceKES:       8900,
			Images:         []string{"product2"},
			AvailableSizes: []string{"M", "L", "XL"},
			FabricOptions:  []string{"Kitenge Cotton"},
			InStock:        stock(8),
			Featured:       &featured,
		},
		{
			Name:           "Executive Blazer",
			Description:    "Professional with African flair",
			Category:       "mens-suits",
			Type:           domain.ProductReady,
			PriceKES:       22000,
			Images:         []string{"product3"},
			AvailableSizes: []string{"S", "M", "L"},
			FabricOptions:  []string{"Wool Blend"},
			InStock:        stock(3),
			Featured:       &featured,
		},
		{
			Name:           "Traditional Set",
			Description:    "Cultural heritage meets modern design",
			Category:       "womens-traditional",
			Type:           domain.ProductReady,
			PriceKES:       18500,
			Images:         []string{"product4"},
			AvailableSizes: []string{"S", "M", "L"},
			FabricOptions:  []string{"Traditional Cotton"},
			InStock:        stock(4),
			Featured:       &featured,
		},
		{
			Name:          "Bespoke Kaftan",
			Description:   "Tailored to your measurements in the fabric of your choice",
			Category:      "mens-traditional",
			Type:          domain.ProductCustom,
			PriceKES:      12000,
			Images:        []string{"product5"},
			FabricOptions: []string{"Kitenge Cotton", "Linen", "Silk Blend"},
		},
		{
			Name:        "Ankara Tote",
			Description: "Structured tote lined in cotton drill",
			Category:    "ankara-bags",
			Type:        domain.ProductReady,
			PriceKES:    3500,
			Images:      []string{"product6"},
			InStock:     stock(12),
		},
	}
}

// SeedCatalog loads fixture into repo when it holds no products yet and
// returns how many products were created.
func SeedCatalog(ctx context.Context, repo ports.ProductRepository, fixture []domain.NewProduct, logger zerolog.Logger) (int, error) {
	existing, err := repo.GetProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	if len(existing) > 0 {
		logger.Debug().Int("products", len(existing)).Msg("catalog already populated, skipping seed")
		return 0, nil
	}

	for i, in := range fixture {
		if _, err := repo.CreateProduct(ctx, in); err != nil {
			return i, fmt.Errorf("seed catalog: %w", err)
		}
	}
	logger.Info().Int("products", len(fixture)).Msg("catalog seeded")
	return len(fixture), nil
}
