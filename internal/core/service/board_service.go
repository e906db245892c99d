package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

// BoardService manages workflow boards. A board's statuses map drives the
// free-form status values projects can take.
type BoardService struct {
	repo   ports.BoardRepository
	logger zerolog.Logger
}

func NewBoardService(repo ports.BoardRepository, logger zerolog.Logger) *BoardService {
	return &BoardService{repo: repo, logger: logger}
}

func (s *BoardService) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	now := time.Now().UTC()
	board.ID = uuid.NewString()
	if board.Statuses == nil {
		board.Statuses = map[string]string{}
	}
	board.Active = true
	board.CreatedAt = now
	board.UpdatedAt = now

	if err := s.repo.Create(ctx, board); err != nil {
		return nil, err
	}
	s.logger.Info().Str("board_id", board.ID).Str("name", board.Name).Msg("board created")
	return board, nil
}

func (s *BoardService) List(ctx context.Context, activeOnly bool) ([]domain.Board, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *BoardService) Get(ctx context.Context, id string) (*domain.Board, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BoardService) Update(ctx context.Context, id string, patch ports.BoardPatch) (*domain.Board, error) {
	board, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		board.Name = *patch.Name
	}
	if patch.Description != nil {
		board.Description = *patch.Description
	}
	if patch.Statuses != nil {
		board.Statuses = *patch.Statuses
	}
	if patch.Color != nil {
		board.Color = *patch.Color
	}
	if patch.Active != nil {
		board.Active = *patch.Active
	}
	board.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *BoardService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
