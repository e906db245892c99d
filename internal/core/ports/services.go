package ports

import (
	"context"

	"github.com/agenciahub/backend/internal/core/domain"
)

// ClientService manages the client roster.
type ClientService interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Update(ctx context.Context, id string, patch ClientPatch) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// ProjectService manages client projects.
type ProjectService interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// FinancialService manages income and expense entries.
type FinancialService interface {
	Create(ctx context.Context, entry *domain.FinancialEntry) (*domain.FinancialEntry, error)
	List(ctx context.Context) ([]domain.FinancialEntry, error)
	Get(ctx context.Context, id string) (*domain.FinancialEntry, error)
	Update(ctx context.Context, id string, patch EntryPatch) (*domain.FinancialEntry, error)
	Delete(ctx context.Context, id string) error
}

// BoardService manages workflow boards.
type BoardService interface {
	Create(ctx context.Context, board *domain.Board) (*domain.Board, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Board, error)
	Get(ctx context.Context, id string) (*domain.Board, error)
	Update(ctx context.Context, id string, patch BoardPatch) (*domain.Board, error)
	Delete(ctx context.Context, id string) error
}
