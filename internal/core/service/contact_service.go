package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

type ContactService struct {
	repo   ports.ContactRepository
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, in domain.NewContact) (*domain.Contact, error) {
	c, err := s.repo.CreateContact(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("contact_id", c.ID).Str("subject", c.Subject).Msg("contact received")
	return c, nil
}

func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.repo.GetContacts(ctx)
}
