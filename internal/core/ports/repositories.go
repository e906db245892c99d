package ports

import (
	"context"
	"time"

	"github.com/agenciahub/backend/internal/core/domain"
)

// ClientRepository persists clients. Update replaces the stored document;
// partial-merge semantics are the service layer's concern.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ProjectRepository persists projects and answers the dashboard's
// project-shaped aggregate queries.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id string) error

	FindByClient(ctx context.Context, clientID string) ([]domain.Project, error)
	Recent(ctx context.Context, limit int) ([]domain.Project, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	DueBefore(ctx context.Context, until time.Time, statuses []string) ([]domain.Project, error)
}

// FinancialRepository persists financial entries and answers the dashboard's
// money-shaped aggregate queries.
type FinancialRepository interface {
	Create(ctx context.Context, entry *domain.FinancialEntry) error
	FindByID(ctx context.Context, id string) (*domain.FinancialEntry, error)
	List(ctx context.Context) ([]domain.FinancialEntry, error)
	Update(ctx context.Context, entry *domain.FinancialEntry) error
	Delete(ctx context.Context, id string) error

	FindByClient(ctx context.Context, clientID string) ([]domain.FinancialEntry, error)
	// FindInRange returns entries with from <= date <= to, newest first.
	FindInRange(ctx context.Context, from, to time.Time) ([]domain.FinancialEntry, error)
	// SumAmount totals entries of one type with from <= date < to.
	SumAmount(ctx context.Context, t domain.EntryType, from, to time.Time) (float64, error)
	RevenueByClient(ctx context.Context) ([]ClientRevenue, error)
	CategoryTotals(ctx context.Context, t domain.EntryType) ([]CategoryTotal, error)
}

// ServiceRepository persists catalog services.
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) error
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	Delete(ctx context.Context, id string) error
	FindByProject(ctx context.Context, projectID string) ([]domain.Service, error)
}

// BoardRepository persists workflow boards.
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id string) (*domain.Board, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id string) error
}

// ReportRepository persists report records. Reports are immutable after
// creation, so there is no update or delete.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	FindByID(ctx context.Context, id string) (*domain.Report, error)
	// List returns all reports, newest first.
	List(ctx context.Context) ([]domain.Report, error)
}
