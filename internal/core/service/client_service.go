package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	now := time.Now().UTC()
	client.ID = uuid.NewString()
	if client.Status == "" {
		client.Status = domain.ClientStatusActive
	}
	client.CreatedAt = now
	client.UpdatedAt = now

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	s.logger.Info().Str("client_id", client.ID).Str("name", client.Name).Msg("client created")
	return client, nil
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial merge: only fields present in the patch overwrite
// stored values.
func (s *ClientService) Update(ctx context.Context, id string, patch ports.ClientPatch) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		client.Name = *patch.Name
	}
	if patch.ContactName != nil {
		client.ContactName = *patch.ContactName
	}
	if patch.City != nil {
		client.City = *patch.City
	}
	if patch.Phone != nil {
		client.Phone = *patch.Phone
	}
	if patch.Email != nil {
		client.Email = *patch.Email
	}
	if patch.PaymentData != nil {
		client.PaymentData = *patch.PaymentData
	}
	if patch.Avatar != nil {
		client.Avatar = *patch.Avatar
	}
	if patch.Status != nil {
		client.Status = *patch.Status
	}
	if patch.Notes != nil {
		client.Notes = *patch.Notes
	}
	client.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes the client. Dependent projects and financial entries are
// left untouched; referential integrity is not enforced.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("client_id", id).Msg("client deleted")
	return nil
}
