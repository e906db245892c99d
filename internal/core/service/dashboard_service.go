package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

const (
	defaultRecentLimit = 5
	metricsCacheKey    = "dashboard:metrics"
	timelineWindowDays = 30
	summaryMonths      = 6
)

// DashboardService composes read-only analytical queries over the CRUD store.
// The metrics payload is memoized in the cache for cacheTTL; a zero TTL or nil
// cache disables memoization entirely.
type DashboardService struct {
	projects  ports.ProjectRepository
	clients   ports.ClientRepository
	financial ports.FinancialRepository
	cache     ports.Cache
	cacheTTL  time.Duration
	logger    zerolog.Logger
}

func NewDashboardService(
	projects ports.ProjectRepository,
	clients ports.ClientRepository,
	financial ports.FinancialRepository,
	cache ports.Cache,
	cacheTTL time.Duration,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		projects:  projects,
		clients:   clients,
		financial: financial,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

func (s *DashboardService) Metrics(ctx context.Context) (*ports.DashboardMetrics, error) {
	if s.cache != nil && s.cacheTTL > 0 {
		var cached ports.DashboardMetrics
		hit, err := s.cache.Get(ctx, metricsCacheKey, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Msg("metrics cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	byStatus, err := s.projects.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	totalClients, err := s.clients.Count(ctx)
	if err != nil {
		return nil, err
	}

	monthStart := firstOfMonth(time.Now().UTC())
	nextMonth := firstOfMonth(monthStart.AddDate(0, 0, 32))

	income, err := s.financial.SumAmount(ctx, domain.EntryIncome, monthStart, nextMonth)
	if err != nil {
		return nil, err
	}
	expenses, err := s.financial.SumAmount(ctx, domain.EntryExpense, monthStart, nextMonth)
	if err != nil {
		return nil, err
	}

	net := income - expenses
	margin := 0.0
	if income > 0 {
		margin = net / income * 100
	}

	metrics := &ports.DashboardMetrics{
		ProjectsByStatus: byStatus,
		TotalClients:     totalClients,
		MonthlyIncome:    income,
		MonthlyExpenses:  expenses,
		NetProfit:        net,
		ProfitMargin:     margin,
	}

	if s.cache != nil && s.cacheTTL > 0 {
		if err := s.cache.Set(ctx, metricsCacheKey, metrics, s.cacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("metrics cache write failed")
		}
	}
	return metrics, nil
}

func (s *DashboardService) RecentProjects(ctx context.Context, limit int) ([]domain.Project, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.projects.Recent(ctx, limit)
}

// FinancialSummary returns one entry per month for the trailing six months,
// oldest first. Months are stepped back in fixed 30-day increments from the
// first of the current month, so consecutive windows can overlap or skip a
// day around months that are not 30 days long.
func (s *DashboardService) FinancialSummary(ctx context.Context) ([]ports.MonthSummary, error) {
	current := firstOfMonth(time.Now().UTC())

	summaries := make([]ports.MonthSummary, 0, summaryMonths)
	for i := 0; i < summaryMonths; i++ {
		monthStart := current.AddDate(0, 0, -30*i)
		monthEnd := firstOfMonth(monthStart.AddDate(0, 0, 32))

		income, err := s.financial.SumAmount(ctx, domain.EntryIncome, monthStart, monthEnd)
		if err != nil {
			return nil, err
		}
		expenses, err := s.financial.SumAmount(ctx, domain.EntryExpense, monthStart, monthEnd)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, ports.MonthSummary{
			Month:    monthStart.Format("2006-01"),
			Income:   income,
			Expenses: expenses,
			Profit:   income - expenses,
		})
	}

	// reverse into chronological order
	for i, j := 0, len(summaries)-1; i < j; i, j = i+1, j-1 {
		summaries[i], summaries[j] = summaries[j], summaries[i]
	}
	return summaries, nil
}

func (s *DashboardService) RevenueByClient(ctx context.Context) ([]ports.ClientRevenue, error) {
	return s.financial.RevenueByClient(ctx)
}

// ProjectTimeline lists open projects due within the next 30 days, soonest
// first. Past-due open projects are included.
func (s *DashboardService) ProjectTimeline(ctx context.Context) ([]ports.TimelineEntry, error) {
	until := time.Now().UTC().AddDate(0, 0, timelineWindowDays)

	projects, err := s.projects.DueBefore(ctx, until, domain.OpenStatuses)
	if err != nil {
		return nil, err
	}

	entries := make([]ports.TimelineEntry, 0, len(projects))
	for _, p := range projects {
		if p.DueDate == nil {
			continue
		}
		clientName := "unknown client"
		if client, err := s.clients.FindByID(ctx, p.ClientID); err == nil {
			clientName = client.Name
		}
		entries = append(entries, ports.TimelineEntry{
			ID:         p.ID,
			Title:      p.Title,
			ClientName: clientName,
			DueDate:    p.DueDate.Format(time.RFC3339),
			Status:     p.Status,
			Priority:   p.Priority,
			Progress:   p.Progress,
		})
	}
	return entries, nil
}

func (s *DashboardService) FinancialCategories(ctx context.Context) (*ports.CategoryBreakdown, error) {
	income, err := s.financial.CategoryTotals(ctx, domain.EntryIncome)
	if err != nil {
		return nil, err
	}
	expenses, err := s.financial.CategoryTotals(ctx, domain.EntryExpense)
	if err != nil {
		return nil, err
	}
	return &ports.CategoryBreakdown{IncomeCategories: income, ExpenseCategories: expenses}, nil
}

// firstOfMonth truncates t to midnight on the first day of its month.
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
