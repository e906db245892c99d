package ports

import (
	"time"

	"github.com/agenciahub/backend/internal/core/domain"
)

// ProjectRow is one line of the client report's project table, with statuses
// and priorities already translated to display labels.
type ProjectRow struct {
	Title    string
	Status   string
	Priority string
	Value    float64
	HasValue bool
	Progress int
}

// ClientReportData is everything the client report page needs.
type ClientReportData struct {
	Client        domain.Client
	Projects      []ProjectRow
	HasFinancial  bool
	TotalIncome   float64
	TotalExpenses float64
	Balance       float64
}

// CategoryShare is a category total plus its share of the respective
// income/expense total.
type CategoryShare struct {
	Category string
	Amount   float64
	Percent  float64
}

// FinancialReportData is everything the financial report needs for a date
// range. Transactions are newest first and already capped by the service.
type FinancialReportData struct {
	From              time.Time
	To                time.Time
	TotalIncome       float64
	TotalExpenses     float64
	NetProfit         float64
	ProfitMargin      float64
	IncomeByCategory  []CategoryShare
	ExpenseByCategory []CategoryShare
	Transactions      []domain.FinancialEntry
}

// ProjectReportData is everything the project report needs.
type ProjectReportData struct {
	Project       domain.Project
	ClientName    string
	StatusLabel   string
	PriorityLabel string
	Services      []domain.Service
}

// InvoiceData is a fully computed invoice or quote ready to render.
type InvoiceData struct {
	Quote        bool
	ClientName   string
	ContactName  string
	ClientEmail  string
	ProjectTitle string
	Number       string
	Date         string
	DueDate      string
	Status       string
	Items        []InvoiceItem
	Subtotal     float64
	Discount     float64
	Tax          float64
	Total        float64
	Notes        string
}

// DocumentRenderer renders report data into a PDF file on disk and returns
// the file path. Removal of the file is the caller's responsibility.
type DocumentRenderer interface {
	ClientReport(data ClientReportData) (string, error)
	FinancialReport(data FinancialReportData) (string, error)
	ProjectReport(data ProjectReportData) (string, error)
	Invoice(data InvoiceData) (string, error)
}
