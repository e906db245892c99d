package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

type FinancialService struct {
	repo   ports.FinancialRepository
	logger zerolog.Logger
}

func NewFinancialService(repo ports.FinancialRepository, logger zerolog.Logger) *FinancialService {
	return &FinancialService{repo: repo, logger: logger}
}

func (s *FinancialService) Create(ctx context.Context, entry *domain.FinancialEntry) (*domain.FinancialEntry, error) {
	now := time.Now().UTC()
	entry.ID = uuid.NewString()
	if entry.Status == "" {
		entry.Status = domain.EntryStatusPending
	}
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("entry_id", entry.ID).
		Str("type", string(entry.Type)).
		Float64("amount", entry.Amount).
		Msg("financial entry created")
	return entry, nil
}

func (s *FinancialService) List(ctx context.Context) ([]domain.FinancialEntry, error) {
	return s.repo.List(ctx)
}

func (s *FinancialService) Get(ctx context.Context, id string) (*domain.FinancialEntry, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *FinancialService) Update(ctx context.Context, id string, patch ports.EntryPatch) (*domain.FinancialEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Description != nil {
		entry.Description = *patch.Description
	}
	if patch.Category != nil {
		entry.Category = *patch.Category
	}
	if patch.Amount != nil {
		entry.Amount = *patch.Amount
	}
	if patch.Date != nil {
		entry.Date = *patch.Date
	}
	if patch.Status != nil {
		entry.Status = *patch.Status
	}
	if patch.ClientID != nil {
		entry.ClientID = *patch.ClientID
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *FinancialService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
