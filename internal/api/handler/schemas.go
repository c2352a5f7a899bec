package handler

import "github.com/kitenge-atelier/storefront/internal/core/domain"

// --- Request types ---
// Server-generated fields (id, createdAt, and for orders status and
// estimatedPrice) are absent, so any client value for them is dropped.

type createProductRequest struct {
	Name           string   `json:"name"           validate:"required"`
	Description    string   `json:"description"`
	Category       string   `json:"category"       validate:"required"`
	Type           string   `json:"type"           validate:"required,oneof=ready custom"`
	PriceKES       *int     `json:"priceKES"       validate:"required,min=0"`
	Images         []string `json:"images"`
	AvailableSizes []string `json:"availableSizes"`
	FabricOptions  []string `json:"fabricOptions"`
	InStock        *int     `json:"inStock"        validate:"omitnil,min=0"`
	Featured       *string  `json:"featured"       validate:"omitnil,oneof=true false"`
}

type updateProductRequest struct {
	Name           *string   `json:"name"           validate:"omitnil,min=1"`
	Description    *string   `json:"description"`
	Category       *string   `json:"category"       validate:"omitnil,min=1"`
	Type           *string   `json:"type"           validate:"omitnil,oneof=ready custom"`
	PriceKES       *int      `json:"priceKES"       validate:"omitnil,min=0"`
	Images         *[]string `json:"images"`
	AvailableSizes *[]string `json:"availableSizes"`
	FabricOptions  *[]string `json:"fabricOptions"`
	InStock        *int      `json:"inStock"        validate:"omitnil,min=0"`
	Featured       *string   `json:"featured"       validate:"omitnil,oneof=true false"`
}

// measurementsRequest bounds are centimetres.
type measurementsRequest struct {
	Chest         float64  `json:"chest"         validate:"required,min=50,max=200"`
	Waist         float64  `json:"waist"         validate:"required,min=40,max=180"`
	Hip           float64  `json:"hip"           validate:"required,min=50,max=200"`
	Height        *float64 `json:"height"        validate:"omitnil,min=120,max=220"`
	ShoulderWidth *float64 `json:"shoulderWidth" validate:"omitnil,min=30,max=80"`
	ArmLength     *float64 `json:"armLength"     validate:"omitnil,min=50,max=100"`
}

type createOrderRequest struct {
	CustomerName        string              `json:"customerName"        validate:"required"`
	CustomerEmail       string              `json:"customerEmail"       validate:"required,email"`
	GarmentType         string              `json:"garmentType"         validate:"required"`
	FabricPreference    string              `json:"fabricPreference"    validate:"required"`
	Measurements        measurementsRequest `json:"measurements"`
	SpecialRequirements *string             `json:"specialRequirements"`
}

// updateOrderRequest accepts only the admin-controlled order fields.
type updateOrderRequest struct {
	Status         *string `json:"status"         validate:"omitnil,oneof=pending in-progress completed"`
	EstimatedPrice *int    `json:"estimatedPrice" validate:"omitnil,gt=0"`
}

type createContactRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Subject   string `json:"subject"   validate:"required"`
	Message   string `json:"message"   validate:"required"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --- Response types ---

// ErrorResponse is the JSON envelope for every error.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Request → domain ---

func (r createProductRequest) toDomain() domain.NewProduct {
	return domain.NewProduct{
		Name:           r.Name,
		Description:    r.Description,
		Category:       r.Category,
		Type:           domain.ProductType(r.Type),
		PriceKES:       *r.PriceKES,
		Images:         r.Images,
		AvailableSizes: r.AvailableSizes,
		FabricOptions:  r.FabricOptions,
		InStock:        r.InStock,
		Featured:       r.Featured,
	}
}

func (r updateProductRequest) toDomain() domain.ProductPatch {
	patch := domain.ProductPatch{
		Name:           r.Name,
		Description:    r.Description,
		Category:       r.Category,
		PriceKES:       r.PriceKES,
		Images:         r.Images,
		AvailableSizes: r.AvailableSizes,
		FabricOptions:  r.FabricOptions,
		InStock:        r.InStock,
		Featured:       r.Featured,
	}
	if r.Type != nil {
		t := domain.ProductType(*r.Type)
		patch.Type = &t
	}
	return patch
}

func (r createOrderRequest) toDomain() domain.NewCustomOrder {
	return domain.NewCustomOrder{
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		GarmentType:      r.GarmentType,
		FabricPreference: r.FabricPreference,
		Measurements: domain.Measurements{
			Chest:         r.Measurements.Chest,
			Waist:         r.Measurements.Waist,
			Hip:           r.Measurements.Hip,
			Height:        r.Measurements.Height,
			ShoulderWidth: r.Measurements.ShoulderWidth,
			ArmLength:     r.Measurements.ArmLength,
		},
		SpecialRequirements: r.SpecialRequirements,
	}
}

func (r updateOrderRequest) toDomain() domain.CustomOrderPatch {
	patch := domain.CustomOrderPatch{EstimatedPrice: r.EstimatedPrice}
	if r.Status != nil {
		s := domain.OrderStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}

func (r createContactRequest) toDomain() domain.NewContact {
	return domain.NewContact{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Subject:   r.Subject,
		Message:   r.Message,
	}
}
