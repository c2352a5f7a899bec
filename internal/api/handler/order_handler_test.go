package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

var createdAt = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

const validOrder = `{
	"customerName": "Wanjiru",
	"customerEmail": "wanjiru@example.com",
	"garmentType": "kaftan",
	"fabricPreference": "kitenge",
	"measurements": {"chest": 96, "waist": 80, "hip": 100, "height": 170}
}`

func TestOrderHandler_Create_ForwardsIdempotencyKey(t *testing.T) {
	stub := &stubOrders{
		createFn: func(ctx context.Context, in domain.NewCustomOrder, key string) (*ports.CreateOrderResult, error) {
			if key != "retry-1" {
				t.Fatalf("unexpected key %q", key)
			}
			if in.Measurements.Height == nil || *in.Measurements.Height != 170 {
				t.Fatalf("height not forwarded: %+v", in.Measurements)
			}
			o := in.Build("o-1", createdAt)
			return &ports.CreateOrderResult{Order: &o, Replayed: true}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newContext(http.MethodPost, "/api/custom-orders", validOrder)
	c.Request().Header.Set(HeaderIdempotencyKey, " retry-1 ")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if rec.Header().Get(HeaderIdempotentReplayed) != "true" {
		t.Fatalf("expected replay header")
	}
}

func TestOrderHandler_Create_MeasurementBounds(t *testing.T) {
	cases := map[string]string{
		"measurements.waist":         `{"chest": 96, "waist": 39, "hip": 100}`,
		"measurements.hip":           `{"chest": 96, "waist": 80, "hip": 201}`,
		"measurements.height":        `{"chest": 96, "waist": 80, "hip": 100, "height": 119}`,
		"measurements.shoulderWidth": `{"chest": 96, "waist": 80, "hip": 100, "shoulderWidth": 81}`,
		"measurements.armLength":     `{"chest": 96, "waist": 80, "hip": 100, "armLength": 49}`,
		"measurements.chest":         `{"waist": 80, "hip": 100}`,
	}
	h := NewOrderHandler(&stubOrders{})

	for field, measurements := range cases {
		body := `{"customerName":"W","customerEmail":"w@example.com","garmentType":"kaftan","fabricPreference":"kitenge","measurements":` + measurements + `}`
		c, _ := newContext(http.MethodPost, "/api/custom-orders", body)

		err := h.Create(c)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected ValidationError, got %v", field, err)
		}
		if len(ve.Fields) != 1 || ve.Fields[0].Field != field {
			t.Fatalf("%s: unexpected fields %+v", field, ve.Fields)
		}
	}
}

func TestOrderHandler_Create_WrongTypeAndSyntax(t *testing.T) {
	h := NewOrderHandler(&stubOrders{})

	body := `{"customerName":"W","customerEmail":"w@example.com","garmentType":"kaftan","fabricPreference":"kitenge","measurements":{"chest":"ninety","waist":80,"hip":100}}`
	c, _ := newContext(http.MethodPost, "/api/custom-orders", body)

	var ve *ValidationError
	if err := h.Create(c); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Message != "Invalid order data" || len(ve.Fields) != 1 || ve.Fields[0].Field != "measurements.chest" {
		t.Fatalf("unexpected error %+v", ve)
	}
	if ve.Fields[0].Message != "measurements.chest must be a number" {
		t.Fatalf("unexpected message %q", ve.Fields[0].Message)
	}

	c, _ = newContext(http.MethodPost, "/api/custom-orders", `{"customerName":`)
	if err := h.Create(c); err != errInvalidPayload {
		t.Fatalf("expected errInvalidPayload for broken JSON, got %v", err)
	}
}

func TestOrderHandler_Update_OnlyAdminFields(t *testing.T) {
	stub := &stubOrders{
		updateFn: func(ctx context.Context, id string, patch domain.CustomOrderPatch) (*domain.CustomOrder, error) {
			if patch.Status == nil || *patch.Status != domain.OrderCompleted || patch.EstimatedPrice != nil {
				t.Fatalf("unexpected patch: %+v", patch)
			}
			return &domain.CustomOrder{ID: id, Status: *patch.Status}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newContext(http.MethodPatch, "/api/admin/orders/o-1", `{"status":"completed","customerName":"Ignored"}`)
	c.SetParamNames("id")
	c.SetParamValues("o-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
