package service

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

const maxReportTransactions = 20

// ReportService owns the service catalog, immutable report records, and the
// assembly of data for PDF documents.
type ReportService struct {
	services  ports.ServiceRepository
	reports   ports.ReportRepository
	clients   ports.ClientRepository
	projects  ports.ProjectRepository
	financial ports.FinancialRepository
	renderer  ports.DocumentRenderer
	logger    zerolog.Logger
}

func NewReportService(
	services ports.ServiceRepository,
	reports ports.ReportRepository,
	clients ports.ClientRepository,
	projects ports.ProjectRepository,
	financial ports.FinancialRepository,
	renderer ports.DocumentRenderer,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		services:  services,
		reports:   reports,
		clients:   clients,
		projects:  projects,
		financial: financial,
		renderer:  renderer,
		logger:    logger,
	}
}

// --- Service catalog ---

func (s *ReportService) CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	now := time.Now().UTC()
	svc.ID = uuid.NewString()
	svc.Active = true
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *ReportService) ListServices(ctx context.Context, activeOnly bool) ([]domain.Service, error) {
	return s.services.List(ctx, activeOnly)
}

func (s *ReportService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	return s.services.FindByID(ctx, id)
}

func (s *ReportService) UpdateService(ctx context.Context, id string, patch ports.ServicePatch) (*domain.Service, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		svc.Name = *patch.Name
	}
	if patch.Category != nil {
		svc.Category = *patch.Category
	}
	if patch.Price != nil {
		svc.Price = *patch.Price
	}
	if patch.Description != nil {
		svc.Description = *patch.Description
	}
	if patch.Color != nil {
		svc.Color = *patch.Color
	}
	if patch.ProjectID != nil {
		svc.ProjectID = *patch.ProjectID
	}
	if patch.Active != nil {
		svc.Active = *patch.Active
	}
	svc.UpdatedAt = time.Now().UTC()

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *ReportService) DeleteService(ctx context.Context, id string) error {
	return s.services.Delete(ctx, id)
}

// --- Report records ---

// GenerateReport records an immutable billing declaration for a client with
// the computed total value.
func (s *ReportService) GenerateReport(ctx context.Context, userID, clientID string, items []domain.ReportItem) (*domain.Report, error) {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, err
	}

	report := &domain.Report{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		Services:    items,
		TotalValue:  domain.TotalValueOf(items),
		GeneratedBy: userID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	s.logger.Info().Str("report_id", report.ID).Str("client_id", clientID).Float64("total", report.TotalValue).Msg("report generated")
	return report, nil
}

func (s *ReportService) ListReports(ctx context.Context) ([]domain.Report, error) {
	return s.reports.List(ctx)
}

func (s *ReportService) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	return s.reports.FindByID(ctx, id)
}

// --- PDF documents ---

func (s *ReportService) ClientReportPDF(ctx context.Context, clientID string) (*ports.Document, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	entries, err := s.financial.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	data := ports.ClientReportData{Client: *client}
	for _, p := range projects {
		data.Projects = append(data.Projects, ports.ProjectRow{
			Title:    p.Title,
			Status:   domain.StatusLabel(p.Status),
			Priority: domain.PriorityLabel(p.Priority),
			Value:    p.Value,
			HasValue: p.Value != 0,
			Progress: p.Progress,
		})
	}
	if len(entries) > 0 {
		data.HasFinancial = true
		for _, e := range entries {
			if e.Type == domain.EntryIncome {
				data.TotalIncome += e.Amount
			} else {
				data.TotalExpenses += e.Amount
			}
		}
		data.Balance = data.TotalIncome - data.TotalExpenses
	}

	path, err := s.renderer.ClientReport(data)
	if err != nil {
		return nil, fmt.Errorf("render client report: %w", err)
	}
	return &ports.Document{
		Path:     path,
		Filename: documentFilename("client_report", client.Name),
	}, nil
}

func (s *ReportService) FinancialReportPDF(ctx context.Context, from, to time.Time) (*ports.Document, error) {
	entries, err := s.financial.FindInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	data := ports.FinancialReportData{From: from, To: to}
	incomeByCat := map[string]float64{}
	expenseByCat := map[string]float64{}
	for _, e := range entries {
		if e.Type == domain.EntryIncome {
			data.TotalIncome += e.Amount
			incomeByCat[e.Category] += e.Amount
		} else {
			data.TotalExpenses += e.Amount
			expenseByCat[e.Category] += e.Amount
		}
	}
	data.NetProfit = data.TotalIncome - data.TotalExpenses
	if data.TotalIncome > 0 {
		data.ProfitMargin = data.NetProfit / data.TotalIncome * 100
	}
	data.IncomeByCategory = categoryShares(incomeByCat, data.TotalIncome)
	data.ExpenseByCategory = categoryShares(expenseByCat, data.TotalExpenses)

	data.Transactions = entries
	if len(data.Transactions) > maxReportTransactions {
		data.Transactions = data.Transactions[:maxReportTransactions]
	}

	path, err := s.renderer.FinancialReport(data)
	if err != nil {
		return nil, fmt.Errorf("render financial report: %w", err)
	}
	name := from.Format("20060102") + "_" + to.Format("20060102")
	return &ports.Document{
		Path:     path,
		Filename: documentFilename("financial_report", name),
	}, nil
}

func (s *ReportService) ProjectReportPDF(ctx context.Context, projectID string) (*ports.Document, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	client, err := s.clients.FindByID(ctx, project.ClientID)
	if err != nil {
		return nil, err
	}
	services, err := s.services.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	data := ports.ProjectReportData{
		Project:       *project,
		ClientName:    client.Name,
		StatusLabel:   domain.StatusLabel(project.Status),
		PriorityLabel: domain.PriorityLabel(project.Priority),
		Services:      services,
	}

	path, err := s.renderer.ProjectReport(data)
	if err != nil {
		return nil, fmt.Errorf("render project report: %w", err)
	}
	return &ports.Document{
		Path:     path,
		Filename: documentFilename("project_report", project.Title),
	}, nil
}

func (s *ReportService) InvoicePDF(ctx context.Context, input ports.InvoiceInput) (*ports.Document, error) {
	client, err := s.clients.FindByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	items := input.Items
	if len(items) == 0 {
		services, err := s.services.FindByProject(ctx, input.ProjectID)
		if err != nil {
			return nil, err
		}
		for _, svc := range services {
			items = append(items, ports.InvoiceItem{
				Description: svc.Name,
				Quantity:    1,
				UnitPrice:   svc.Price,
			})
		}
	}

	subtotal, total := InvoiceTotals(items, input.Discount, input.Tax)

	date := input.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	status := input.Status
	if status == "" {
		status = "pending"
	}

	data := ports.InvoiceData{
		Quote:        input.DocType == "quote",
		ClientName:   client.Name,
		ContactName:  client.ContactName,
		ClientEmail:  client.Email,
		ProjectTitle: project.Title,
		Number:       input.Number,
		Date:         date,
		DueDate:      input.DueDate,
		Status:       status,
		Items:        items,
		Subtotal:     subtotal,
		Discount:     input.Discount,
		Tax:          input.Tax,
		Total:        total,
		Notes:        input.Notes,
	}

	path, err := s.renderer.Invoice(data)
	if err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	docType := "invoice"
	if data.Quote {
		docType = "quote"
	}
	return &ports.Document{
		Path:     path,
		Filename: documentFilename(docType, client.Name),
	}, nil
}

// Cleanup removes a rendered document from disk. Failures are logged, never
// propagated.
func (s *ReportService) Cleanup(doc *ports.Document) {
	if doc == nil || doc.Path == "" {
		return
	}
	if err := os.Remove(doc.Path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Err(err).Str("path", doc.Path).Msg("failed to remove temp document")
	}
}

// InvoiceTotals computes subtotal and final total for a set of invoice items.
// A missing quantity counts as one; total = subtotal - discount + tax.
func InvoiceTotals(items []ports.InvoiceItem, discount, tax float64) (subtotal, total float64) {
	for _, it := range items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		subtotal += float64(qty) * it.UnitPrice
	}
	return subtotal, subtotal - discount + tax
}

// categoryShares converts a category→amount map into rows sorted descending
// by amount, each with its percentage of the given total.
func categoryShares(byCategory map[string]float64, totalAmount float64) []ports.CategoryShare {
	shares := make([]ports.CategoryShare, 0, len(byCategory))
	for category, amount := range byCategory {
		percent := 0.0
		if totalAmount > 0 {
			percent = amount / totalAmount * 100
		}
		shares = append(shares, ports.CategoryShare{Category: category, Amount: amount, Percent: percent})
	}
	sort.Slice(shares, func(i, j int) bool { return shares[i].Amount > shares[j].Amount })
	return shares
}

// documentFilename builds "{report-type}_{entity-name}_{YYYYMMDD}.pdf".
func documentFilename(docType, entityName string) string {
	name := strings.ReplaceAll(strings.TrimSpace(entityName), " ", "_")
	return fmt.Sprintf("%s_%s_%s.pdf", docType, name, time.Now().UTC().Format("20060102"))
}
