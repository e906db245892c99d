package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

type ProjectService struct {
	repo    ports.ProjectRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, clients ports.ClientRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, clients: clients, logger: logger}
}

// Create stores a new project. The client reference must resolve to an
// existing client.
func (s *ProjectService) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if _, err := s.clients.FindByID(ctx, project.ClientID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	project.ID = uuid.NewString()
	if project.Status == "" {
		project.Status = domain.StatusPlanning
	}
	if project.Priority == "" {
		project.Priority = domain.PriorityMedium
	}
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	s.logger.Info().Str("project_id", project.ID).Str("client_id", project.ClientID).Msg("project created")
	return project, nil
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) Update(ctx context.Context, id string, patch ports.ProjectPatch) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.Priority != nil {
		project.Priority = *patch.Priority
	}
	if patch.StartDate != nil {
		project.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		project.EndDate = *patch.EndDate
	}
	if patch.DueDate != nil {
		project.DueDate = patch.DueDate
	}
	if patch.Value != nil {
		project.Value = *patch.Value
	}
	if patch.Progress != nil {
		project.Progress = *patch.Progress
	}
	if patch.Notes != nil {
		project.Notes = *patch.Notes
	}
	if patch.AssignedTo != nil {
		project.AssignedTo = *patch.AssignedTo
	}
	if patch.BoardID != nil {
		project.BoardID = *patch.BoardID
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}
