package domain

import "time"

// ProductType distinguishes stock garments from made-to-measure ones.
type ProductType string

const (
	ProductReady  ProductType = "ready"
	ProductCustom ProductType = "custom"
)

const (
	FlagTrue  = "true"
	FlagFalse = "false"
)

// Product is a catalog entry. PriceKES is the canonical price; USD is derived
// for display and never stored.
type Product struct {
	ID             string      `json:"id" bson:"_id"`
	Name           string      `json:"name" bson:"name"`
	Description    string      `json:"description" bson:"description"`
	Category       string      `json:"category" bson:"category"`
	Type           ProductType `json:"type" bson:"type"`
	PriceKES       int         `json:"priceKES" bson:"price_kes"`
	Images         []string    `json:"images" bson:"images"`
	AvailableSizes []string    `json:"availableSizes" bson:"available_sizes"`
	FabricOptions  []string    `json:"fabricOptions" bson:"fabric_options"`
	InStock        *int        `json:"inStock" bson:"in_stock"`
	Featured       string      `json:"featured" bson:"featured"`
	CreatedAt      time.Time   `json:"createdAt" bson:"created_at"`
}

// NewProduct is the creation input. Nil optional fields are filled by Build.
type NewProduct struct {
	Name           string
	Description    string
	Category       string
	Type           ProductType
	PriceKES       int
	Images         []string
	AvailableSizes []string
	FabricOptions  []string
	InStock        *int
	Featured       *string
}

// ProductPatch is a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name           *string
	Description    *string
	Category       *string
	Type           *ProductType
	PriceKES       *int
	Images         *[]string
	AvailableSizes *[]string
	FabricOptions  *[]string
	InStock        *int
	Featured       *string
}

// IsEmpty reports whether the patch carries no field at all.
func (p ProductPatch) IsEmpty() bool {
	return p == ProductPatch{}
}

// Build materialises a NewProduct into a Product with its declared defaults:
// images becomes an empty list, inStock 0 and featured "false". The nullable
// size and fabric lists stay nil when omitted.
func (in NewProduct) Build(id string, now time.Time) Product {
	p := Product{
		ID:             id,
		Name:           in.Name,
		Description:    in.Description,
		Category:       in.Category,
		Type:           in.Type,
		PriceKES:       in.PriceKES,
		Images:         cloneStrings(in.Images),
		AvailableSizes: cloneStrings(in.AvailableSizes),
		FabricOptions:  cloneStrings(in.FabricOptions),
		Featured:       FlagFalse,
		CreatedAt:      now,
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	stock := 0
	if in.InStock != nil {
		stock = *in.InStock
	}
	p.InStock = &stock
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	return p
}

// Apply merges the patch onto p. ID and CreatedAt are never touched.
func (patch ProductPatch) Apply(p Product) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.PriceKES != nil {
		p.PriceKES = *patch.PriceKES
	}
	if patch.Images != nil {
		p.Images = cloneStrings(*patch.Images)
		if p.Images == nil {
			p.Images = []string{}
		}
	}
	if patch.AvailableSizes != nil {
		p.AvailableSizes = cloneStrings(*patch.AvailableSizes)
	}
	if patch.FabricOptions != nil {
		p.FabricOptions = cloneStrings(*patch.FabricOptions)
	}
	if patch.InStock != nil {
		stock := *patch.InStock
		p.InStock = &stock
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	return p
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (p Product) Clone() Product {
	out := p
	out.Images = cloneStrings(p.Images)
	out.AvailableSizes = cloneStrings(p.AvailableSizes)
	out.FabricOptions = cloneStrings(p.FabricOptions)
	if p.InStock != nil {
		stock := *p.InStock
		out.InStock = &stock
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
