package ports

import (
	"context"
	"time"

	"github.com/agenciahub/backend/internal/core/domain"
)

// Document is a rendered PDF on disk. The caller streams it and then calls
// Cleanup (best-effort removal of the temp file).
type Document struct {
	Path     string
	Filename string
}

// InvoiceItem is one billable line on an invoice or quote.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"value"`
}

// InvoiceInput describes an invoice/quote generation request. When Items is
// empty, the line items are loaded from the project's attached services with
// quantity one.
type InvoiceInput struct {
	ClientID  string        `json:"client_id"`
	ProjectID string        `json:"project_id"`
	DocType   string        `json:"type"`
	Number    string        `json:"number"`
	Date      string        `json:"date"`
	DueDate   string        `json:"due_date"`
	Status    string        `json:"status"`
	Discount  float64       `json:"discount"`
	Tax       float64       `json:"tax"`
	Notes     string        `json:"notes"`
	Items     []InvoiceItem `json:"items"`
}

// ReportService owns the service catalog, report records, and PDF document
// generation.
type ReportService interface {
	CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	ListServices(ctx context.Context, activeOnly bool) ([]domain.Service, error)
	GetService(ctx context.Context, id string) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, patch ServicePatch) (*domain.Service, error)
	DeleteService(ctx context.Context, id string) error

	GenerateReport(ctx context.Context, userID, clientID string, items []domain.ReportItem) (*domain.Report, error)
	ListReports(ctx context.Context) ([]domain.Report, error)
	GetReport(ctx context.Context, id string) (*domain.Report, error)

	ClientReportPDF(ctx context.Context, clientID string) (*Document, error)
	FinancialReportPDF(ctx context.Context, from, to time.Time) (*Document, error)
	ProjectReportPDF(ctx context.Context, projectID string) (*Document, error)
	InvoicePDF(ctx context.Context, input InvoiceInput) (*Document, error)

	Cleanup(doc *Document)
}
