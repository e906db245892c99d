package ports

import (
	"context"

	"github.com/agenciahub/backend/internal/core/domain"
)

// ClientRevenue is one row of the revenue-by-client ranking.
type ClientRevenue struct {
	ClientName   string  `json:"client_name"`
	TotalRevenue float64 `json:"total_revenue"`
}

// CategoryTotal is one row of the per-category breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// DashboardMetrics is the headline figures block: project counts by status,
// client count, and the current calendar month's financials.
type DashboardMetrics struct {
	ProjectsByStatus map[string]int64 `json:"projects_by_status"`
	TotalClients     int64            `json:"total_clients"`
	MonthlyIncome    float64          `json:"monthly_income"`
	MonthlyExpenses  float64          `json:"monthly_expenses"`
	NetProfit        float64          `json:"net_profit"`
	ProfitMargin     float64          `json:"profit_margin"`
}

// MonthSummary is one month of the rolling financial summary.
type MonthSummary struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// TimelineEntry is a project approaching its due date.
type TimelineEntry struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	ClientName string          `json:"client_name"`
	DueDate    string          `json:"deadline"`
	Status     string          `json:"status"`
	Priority   domain.Priority `json:"priority"`
	Progress   int             `json:"progress"`
}

// CategoryBreakdown groups category totals by entry type.
type CategoryBreakdown struct {
	IncomeCategories  []CategoryTotal `json:"income_categories"`
	ExpenseCategories []CategoryTotal `json:"expense_categories"`
}

// DashboardService exposes the read-only analytical queries backing the
// dashboard endpoints.
type DashboardService interface {
	Metrics(ctx context.Context) (*DashboardMetrics, error)
	RecentProjects(ctx context.Context, limit int) ([]domain.Project, error)
	FinancialSummary(ctx context.Context) ([]MonthSummary, error)
	RevenueByClient(ctx context.Context) ([]ClientRevenue, error)
	ProjectTimeline(ctx context.Context) ([]TimelineEntry, error)
	FinancialCategories(ctx context.Context) (*CategoryBreakdown, error)
}
