package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

type memServiceRepo struct {
	services map[string]*domain.Service
}

func newMemServiceRepo() *memServiceRepo {
	return &memServiceRepo{services: make(map[string]*domain.Service)}
}

func (r *memServiceRepo) Create(_ context.Context, svc *domain.Service) error {
	clone := *svc
	r.services[svc.ID] = &clone
	return nil
}

func (r *memServiceRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	if s, ok := r.services[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, domain.ErrServiceNotFound
}

func (r *memServiceRepo) List(_ context.Context, activeOnly bool) ([]domain.Service, error) {
	var out []domain.Service
	for _, s := range r.services {
		if activeOnly && !s.Active {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *memServiceRepo) Update(_ context.Context, svc *domain.Service) error {
	if _, ok := r.services[svc.ID]; !ok {
		return domain.ErrServiceNotFound
	}
	clone := *svc
	r.services[svc.ID] = &clone
	return nil
}

func (r *memServiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

func (r *memServiceRepo) FindByProject(_ context.Context, projectID string) ([]domain.Service, error) {
	var out []domain.Service
	for _, s := range r.services {
		if s.ProjectID == projectID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type memReportRepo struct {
	reports []domain.Report
}

func (r *memReportRepo) Create(_ context.Context, report *domain.Report) error {
	r.reports = append(r.reports, *report)
	return nil
}

func (r *memReportRepo) FindByID(_ context.Context, id string) (*domain.Report, error) {
	for i := range r.reports {
		if r.reports[i].ID == id {
			clone := r.reports[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrReportNotFound
}

func (r *memReportRepo) List(_ context.Context) ([]domain.Report, error) {
	out := make([]domain.Report, len(r.reports))
	copy(out, r.reports)
	return out, nil
}

// recordingRenderer captures the data handed to each render call instead of
// producing files.
type recordingRenderer struct {
	clientData    *ports.ClientReportData
	financialData *ports.FinancialReportData
	projectData   *ports.ProjectReportData
	invoiceData   *ports.InvoiceData
	err           error
}

func (r *recordingRenderer) ClientReport(data ports.ClientReportData) (string, error) {
	r.clientData = &data
	return "/tmp/client.pdf", r.err
}

func (r *recordingRenderer) FinancialReport(data ports.FinancialReportData) (string, error) {
	r.financialData = &data
	return "/tmp/financial.pdf", r.err
}

func (r *recordingRenderer) ProjectReport(data ports.ProjectReportData) (string, error) {
	r.projectData = &data
	return "/tmp/project.pdf", r.err
}

func (r *recordingRenderer) Invoice(data ports.InvoiceData) (string, error) {
	r.invoiceData = &data
	return "/tmp/invoice.pdf", r.err
}

type reportFixture struct {
	svc       *ReportService
	services  *memServiceRepo
	reports   *memReportRepo
	clients   *memClientRepo
	projects  *memProjectRepo
	financial *memFinancialRepo
	renderer  *recordingRenderer
}

func newReportFixture() *reportFixture {
	f := &reportFixture{
		services:  newMemServiceRepo(),
		reports:   &memReportRepo{},
		clients:   newMemClientRepo(),
		projects:  newMemProjectRepo(),
		financial: newMemFinancialRepo(),
		renderer:  &recordingRenderer{},
	}
	f.svc = NewReportService(f.services, f.reports, f.clients, f.projects, f.financial, f.renderer, zerolog.Nop())
	return f
}

func TestInvoiceTotals(t *testing.T) {
	items := []ports.InvoiceItem{
		{Description: "Design", Quantity: 2, UnitPrice: 50},
		{Description: "Setup", Quantity: 0, UnitPrice: 10}, // missing qty counts as one
	}
	subtotal, total := InvoiceTotals(items, 10, 5)
	if subtotal != 110 {
		t.Fatalf("expected subtotal 110, got %v", subtotal)
	}
	if total != 105 {
		t.Fatalf("expected total 105, got %v", total)
	}
}

func TestReportService_GenerateReport(t *testing.T) {
	f := newReportFixture()
	f.clients.clients["c1"] = &domain.Client{ID: "c1", Name: "Acme"}

	items := []domain.ReportItem{
		{Name: "SEO", Price: 100, Quantity: 2},
		{Name: "Audit", Price: 50}, // missing quantity counts as one
	}
	report, err := f.svc.GenerateReport(context.Background(), "u1", "c1", items)
	if err != nil {
		t.Fatalf("GenerateReport returned error: %v", err)
	}
	if report.TotalValue != 250 {
		t.Fatalf("expected total 250, got %v", report.TotalValue)
	}
	if report.GeneratedBy != "u1" {
		t.Fatalf("expected generated_by u1, got %q", report.GeneratedBy)
	}

	stored, err := f.svc.GetReport(context.Background(), report.ID)
	if err != nil {
		t.Fatalf("GetReport returned error: %v", err)
	}
	if stored.ClientID != "c1" || len(stored.Services) != 2 {
		t.Fatalf("unexpected stored report: %+v", stored)
	}
}

func TestReportService_GenerateReport_UnknownClient(t *testing.T) {
	f := newReportFixture()

	if _, err := f.svc.GenerateReport(context.Background(), "u1", "ghost", nil); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestReportService_ClientReportPDF(t *testing.T) {
	f := newReportFixture()
	f.clients.clients["c1"] = &domain.Client{ID: "c1", Name: "Acme Corp"}
	f.projects.projects["p1"] = &domain.Project{ID: "p1", ClientID: "c1", Title: "Relaunch", Status: domain.StatusInProgress, Priority: domain.PriorityHigh, Value: 5000, Progress: 40}
	f.financial.entries["e1"] = &domain.FinancialEntry{ID: "e1", ClientID: "c1", Type: domain.EntryIncome, Amount: 300}
	f.financial.entries["e2"] = &domain.FinancialEntry{ID: "e2", ClientID: "c1", Type: domain.EntryExpense, Amount: 120}

	doc, err := f.svc.ClientReportPDF(context.Background(), "c1")
	if err != nil {
		t.Fatalf("ClientReportPDF returned error: %v", err)
	}
	if doc.Path != "/tmp/client.pdf" {
		t.Fatalf("unexpected path: %q", doc.Path)
	}
	wantPrefix := "client_report_Acme_Corp_"
	if !strings.HasPrefix(doc.Filename, wantPrefix) || !strings.HasSuffix(doc.Filename, ".pdf") {
		t.Fatalf("unexpected filename: %q", doc.Filename)
	}

	data := f.renderer.clientData
	if data == nil {
		t.Fatalf("renderer never called")
	}
	if !data.HasFinancial || data.TotalIncome != 300 || data.TotalExpenses != 120 || data.Balance != 180 {
		t.Fatalf("unexpected financial block: %+v", data)
	}
	if len(data.Projects) != 1 || data.Projects[0].Status != "In Progress" {
		t.Fatalf("unexpected project rows: %+v", data.Projects)
	}
}

func TestReportService_FinancialReportPDF(t *testing.T) {
	f := newReportFixture()
	now := time.Now().UTC()
	f.financial.entries["e1"] = &domain.FinancialEntry{ID: "e1", Type: domain.EntryIncome, Category: "design", Amount: 150, Date: now}
	f.financial.entries["e2"] = &domain.FinancialEntry{ID: "e2", Type: domain.EntryIncome, Category: "seo", Amount: 50, Date: now}
	f.financial.entries["e3"] = &domain.FinancialEntry{ID: "e3", Type: domain.EntryExpense, Category: "hosting", Amount: 40, Date: now}

	doc, err := f.svc.FinancialReportPDF(context.Background(), now.AddDate(0, 0, -7), now.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("FinancialReportPDF returned error: %v", err)
	}
	if doc.Filename == "" {
		t.Fatalf("expected filename")
	}

	data := f.renderer.financialData
	if data.TotalIncome != 200 || data.TotalExpenses != 40 || data.NetProfit != 160 {
		t.Fatalf("unexpected totals: %+v", data)
	}
	if data.ProfitMargin != 80 {
		t.Fatalf("expected margin 80, got %v", data.ProfitMargin)
	}
	// Categories sorted by amount descending with percentage shares.
	if len(data.IncomeByCategory) != 2 || data.IncomeByCategory[0].Category != "design" {
		t.Fatalf("unexpected income categories: %+v", data.IncomeByCategory)
	}
	if data.IncomeByCategory[0].Percent != 75 {
		t.Fatalf("expected design share 75%%, got %v", data.IncomeByCategory[0].Percent)
	}
}

func TestReportService_FinancialReportPDF_CapsTransactions(t *testing.T) {
	f := newReportFixture()
	now := time.Now().UTC()
	for i := 0; i < 30; i++ {
		id := fmt.Sprintf("e%d", i)
		f.financial.entries[id] = &domain.FinancialEntry{ID: id, Type: domain.EntryIncome, Category: "misc", Amount: 1, Date: now.AddDate(0, 0, -i)}
	}

	if _, err := f.svc.FinancialReportPDF(context.Background(), now.AddDate(0, -2, 0), now); err != nil {
		t.Fatalf("FinancialReportPDF returned error: %v", err)
	}
	if got := len(f.renderer.financialData.Transactions); got != maxReportTransactions {
		t.Fatalf("expected %d transactions, got %d", maxReportTransactions, got)
	}
	// Totals still cover everything, only the listing is capped.
	if f.renderer.financialData.TotalIncome != 30 {
		t.Fatalf("expected total over all entries, got %v", f.renderer.financialData.TotalIncome)
	}
}

func TestReportService_InvoicePDF_ItemsFromProjectServices(t *testing.T) {
	f := newReportFixture()
	f.clients.clients["c1"] = &domain.Client{ID: "c1", Name: "Acme", ContactName: "Ana"}
	f.projects.projects["p1"] = &domain.Project{ID: "p1", ClientID: "c1", Title: "Relaunch"}
	f.services.services["s1"] = &domain.Service{ID: "s1", Name: "Design", Price: 400, ProjectID: "p1", Active: true}
	f.services.services["s2"] = &domain.Service{ID: "s2", Name: "Hosting", Price: 100, ProjectID: "p1", Active: true}

	doc, err := f.svc.InvoicePDF(context.Background(), ports.InvoiceInput{
		ClientID:  "c1",
		ProjectID: "p1",
		Discount:  50,
		Tax:       25,
	})
	if err != nil {
		t.Fatalf("InvoicePDF returned error: %v", err)
	}
	if !strings.HasPrefix(doc.Filename, "invoice_Acme_") {
		t.Fatalf("unexpected filename: %q", doc.Filename)
	}

	data := f.renderer.invoiceData
	if len(data.Items) != 2 {
		t.Fatalf("expected items from project services, got %+v", data.Items)
	}
	if data.Subtotal != 500 || data.Total != 475 {
		t.Fatalf("unexpected totals: subtotal=%v total=%v", data.Subtotal, data.Total)
	}
	if data.Quote {
		t.Fatalf("expected invoice, got quote")
	}
	if data.Status != "pending" {
		t.Fatalf("expected default status pending, got %q", data.Status)
	}
}

func TestReportService_InvoicePDF_QuoteWithExplicitItems(t *testing.T) {
	f := newReportFixture()
	f.clients.clients["c1"] = &domain.Client{ID: "c1", Name: "Acme"}
	f.projects.projects["p1"] = &domain.Project{ID: "p1", ClientID: "c1", Title: "Relaunch"}

	doc, err := f.svc.InvoicePDF(context.Background(), ports.InvoiceInput{
		ClientID:  "c1",
		ProjectID: "p1",
		DocType:   "quote",
		Items: []ports.InvoiceItem{
			{Description: "Consulting", Quantity: 3, UnitPrice: 80},
		},
	})
	if err != nil {
		t.Fatalf("InvoicePDF returned error: %v", err)
	}
	if !strings.HasPrefix(doc.Filename, "quote_") {
		t.Fatalf("unexpected filename: %q", doc.Filename)
	}

	data := f.renderer.invoiceData
	if !data.Quote {
		t.Fatalf("expected quote")
	}
	if data.Subtotal != 240 || data.Total != 240 {
		t.Fatalf("unexpected totals: %+v", data)
	}
}

func TestReportService_Cleanup_MissingFile(t *testing.T) {
	f := newReportFixture()
	// Removing an already-gone file must be silent.
	f.svc.Cleanup(&ports.Document{Path: "/tmp/does-not-exist-12345.pdf", Filename: "x.pdf"})
	f.svc.Cleanup(nil)
}

func TestReportService_ServiceCatalog(t *testing.T) {
	f := newReportFixture()

	created, err := f.svc.CreateService(context.Background(), &domain.Service{Name: "Design", Category: "creative", Price: 400})
	if err != nil {
		t.Fatalf("CreateService returned error: %v", err)
	}
	if !created.Active {
		t.Fatalf("expected new service to be active")
	}

	active := false
	updated, err := f.svc.UpdateService(context.Background(), created.ID, ports.ServicePatch{Active: &active})
	if err != nil {
		t.Fatalf("UpdateService returned error: %v", err)
	}
	if updated.Active {
		t.Fatalf("expected service deactivated")
	}
	if updated.Name != "Design" {
		t.Fatalf("untouched field clobbered: %q", updated.Name)
	}

	all, err := f.svc.ListServices(context.Background(), false)
	if err != nil {
		t.Fatalf("ListServices returned error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 service, got %d", len(all))
	}
	onlyActive, err := f.svc.ListServices(context.Background(), true)
	if err != nil {
		t.Fatalf("ListServices(active) returned error: %v", err)
	}
	if len(onlyActive) != 0 {
		t.Fatalf("expected inactive service filtered out, got %d", len(onlyActive))
	}
}
