package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

const orderIdempotencyScope = "custom-order"

const (
	defaultReplayWait   = 5 * time.Second
	defaultPollInterval = 25 * time.Millisecond
)

type OrderService struct {
	repo        ports.CustomOrderRepository
	idempotency ports.IdempotencyStore
	logger      zerolog.Logger

	// replayWait bounds how long a duplicate request waits for the request
	// that reserved its key.
	replayWait   time.Duration
	pollInterval time.Duration
}

// NewOrderService returns an OrderService. idempotency may be nil, in which
// case Idempotency-Key headers are ignored.
func NewOrderService(repo ports.CustomOrderRepository, idempotency ports.IdempotencyStore, logger zerolog.Logger) *OrderService {
	return &OrderService{
		repo:         repo,
		idempotency:  idempotency,
		logger:       logger,
		replayWait:   defaultReplayWait,
		pollInterval: defaultPollInterval,
	}
}

// Create stores a new pending order. The first request with a given
// idempotencyKey reserves it; later or concurrent requests with the same key
// get that request's order back and nothing is written.
func (s *OrderService) Create(ctx context.Context, in domain.NewCustomOrder, idempotencyKey string) (*ports.CreateOrderResult, error) {
	if idempotencyKey == "" || s.idempotency == nil {
		return s.create(ctx, in)
	}

	reserved, err := s.idempotency.Reserve(ctx, orderIdempotencyScope, idempotencyKey)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", idempotencyKey).Msg("idempotency reserve failed, creating anyway")
		return s.create(ctx, in)
	}

	if !reserved {
		existing, err := s.awaitRecorded(ctx, idempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			s.logger.Info().
				Str("idempotency_key", idempotencyKey).
				Str("order_id", existing.ID).
				Msg("idempotent replay")
			return &ports.CreateOrderResult{Order: existing, Replayed: true}, nil
		}
	}

	res, err := s.create(ctx, in)
	if err != nil {
		if reserved {
			if rerr := s.idempotency.Release(ctx, orderIdempotencyScope, idempotencyKey); rerr != nil {
				s.logger.Warn().Err(rerr).Str("idempotency_key", idempotencyKey).Msg("failed to release idempotency key")
			}
		}
		return nil, err
	}

	if err := s.idempotency.Remember(ctx, orderIdempotencyScope, idempotencyKey, res.Order.ID); err != nil {
		s.logger.Warn().Err(err).Str("order_id", res.Order.ID).Msg("failed to record idempotency key")
	}
	return res, nil
}

func (s *OrderService) create(ctx context.Context, in domain.NewCustomOrder) (*ports.CreateOrderResult, error) {
	order, err := s.repo.CreateCustomOrder(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create custom order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("garment_type", order.GarmentType).
		Msg("custom order created")

	return &ports.CreateOrderResult{Order: order}, nil
}

// awaitRecorded polls until the request holding key records its order, and
// returns that order. It returns nil when there is nothing to replay: the
// reservation was released or expired, the recorded order no longer exists,
// or the store failed.
func (s *OrderService) awaitRecorded(ctx context.Context, key string) (*domain.CustomOrder, error) {
	deadline := time.Now().Add(s.replayWait)
	for {
		id, found, err := s.idempotency.Lookup(ctx, orderIdempotencyScope, key)
		if err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, creating anyway")
			return nil, nil
		}
		if !found {
			return nil, nil
		}
		if id != "" {
			existing, err := s.repo.GetCustomOrder(ctx, id)
			if errors.Is(err, domain.ErrOrderNotFound) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			return existing, nil
		}

		if !time.Now().Before(deadline) {
			return nil, domain.ErrIdempotencyInFlight
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.pollInterval):
		}
	}
}

func (s *OrderService) List(ctx context.Context) ([]domain.CustomOrder, error) {
	return s.repo.GetCustomOrders(ctx)
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.CustomOrder, error) {
	return s.repo.GetCustomOrder(ctx, id)
}

func (s *OrderService) Update(ctx context.Context, id string, patch domain.CustomOrderPatch) (*domain.CustomOrder, error) {
	order, err := s.repo.UpdateCustomOrder(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	ev := s.logger.Info().Str("order_id", id).Str("status", string(order.Status))
	if order.EstimatedPrice != nil {
		ev = ev.Int("estimated_price", *order.EstimatedPrice)
	}
	ev.Msg("custom order updated")

	return order, nil
}
