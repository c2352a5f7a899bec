package domain

import "time"

// OrderStatus is the lifecycle state of a custom order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in-progress"
	OrderCompleted  OrderStatus = "completed"
)

// OrderStatuses lists every valid status in lifecycle order.
var OrderStatuses = []OrderStatus{OrderPending, OrderInProgress, OrderCompleted}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Measurements are body measurements in centimetres.
type Measurements struct {
	Chest         float64  `json:"chest" bson:"chest"`
	Waist         float64  `json:"waist" bson:"waist"`
	Hip           float64  `json:"hip" bson:"hip"`
	Height        *float64 `json:"height,omitempty" bson:"height,omitempty"`
	ShoulderWidth *float64 `json:"shoulderWidth,omitempty" bson:"shoulder_width,omitempty"`
	ArmLength     *float64 `json:"armLength,omitempty" bson:"arm_length,omitempty"`
}

// CustomOrder is a made-to-measure request submitted by a customer.
type CustomOrder struct {
	ID                  string       `json:"id" bson:"_id"`
	CustomerName        string       `json:"customerName" bson:"customer_name"`
	CustomerEmail       string       `json:"customerEmail" bson:"customer_email"`
	GarmentType         string       `json:"garmentType" bson:"garment_type"`
	FabricPreference    string       `json:"fabricPreference" bson:"fabric_preference"`
	Measurements        Measurements `json:"measurements" bson:"measurements"`
	SpecialRequirements *string      `json:"specialRequirements" bson:"special_requirements"`
	Status              OrderStatus  `json:"status" bson:"status"`
	EstimatedPrice      *int         `json:"estimatedPrice" bson:"estimated_price"`
	CreatedAt           time.Time    `json:"createdAt" bson:"created_at"`
}

// NewCustomOrder is the public creation input. It has no status or price:
// those are server controlled.
type NewCustomOrder struct {
	CustomerName        string
	CustomerEmail       string
	GarmentType         string
	FabricPreference    string
	Measurements        Measurements
	SpecialRequirements *string
}

// CustomOrderPatch is a partial update. Which fields callers may set is
// decided at the validation boundary, not here.
type CustomOrderPatch struct {
	Status         *OrderStatus
	EstimatedPrice *int
}

// Build materialises the order in its entry state: pending, unpriced.
func (in NewCustomOrder) Build(id string, now time.Time) CustomOrder {
	o := CustomOrder{
		ID:               id,
		CustomerName:     in.CustomerName,
		CustomerEmail:    in.CustomerEmail,
		GarmentType:      in.GarmentType,
		FabricPreference: in.FabricPreference,
		Measurements:     in.Measurements.Clone(),
		Status:           OrderPending,
		EstimatedPrice:   nil,
		CreatedAt:        now,
	}
	if in.SpecialRequirements != nil && *in.SpecialRequirements != "" {
		req := *in.SpecialRequirements
		o.SpecialRequirements = &req
	}
	return o
}

// Apply merges the patch onto o. ID and CreatedAt are never touched.
func (patch CustomOrderPatch) Apply(o CustomOrder) CustomOrder {
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.EstimatedPrice != nil {
		price := *patch.EstimatedPrice
		o.EstimatedPrice = &price
	}
	return o
}

// Clone returns a deep copy of o.
func (o CustomOrder) Clone() CustomOrder {
	out := o
	out.Measurements = o.Measurements.Clone()
	if o.SpecialRequirements != nil {
		req := *o.SpecialRequirements
		out.SpecialRequirements = &req
	}
	if o.EstimatedPrice != nil {
		price := *o.EstimatedPrice
		out.EstimatedPrice = &price
	}
	return out
}

// Clone returns a deep copy of m.
func (m Measurements) Clone() Measurements {
	out := m
	out.Height = cloneFloat(m.Height)
	out.ShoulderWidth = cloneFloat(m.ShoulderWidth)
	out.ArmLength = cloneFloat(m.ArmLength)
	return out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
