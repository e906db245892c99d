// Package pdf renders the system's paginated documents with fpdf. Each
// render call writes a temp file and returns its path; removal is left to
// the caller once the file has been transmitted.
package pdf

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

const (
	pageWidth   = 190 // usable A4 width in mm with default margins
	lineHeight  = 8
	companyName = "AgencyHub"
)

// invoiceTerms is the fixed legal block appended verbatim to every invoice
// and quote.
const invoiceTerms = `1. Payment is due by the stated due date.
2. Overdue amounts accrue a 2% monthly late fee.
3. Services are delivered as per the agreed specification.
4. Changes in scope may incur additional charges.`

// Generator implements ports.DocumentRenderer.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) ClientReport(data ports.ClientReportData) (string, error) {
	doc := newDoc("Client Report")

	section(doc, "Client Information")
	kvTable(doc, [][2]string{
		{"Name:", data.Client.Name},
		{"Contact:", orNA(data.Client.ContactName)},
		{"Email:", orNA(data.Client.Email)},
		{"Phone:", orNA(data.Client.Phone)},
		{"City:", orNA(data.Client.City)},
		{"Status:", orNA(data.Client.Status)},
	})
	doc.Ln(10)

	if len(data.Projects) > 0 {
		section(doc, "Projects")
		tableHeader(doc, 52, 152, 219, []column{
			{w: 70, label: "Title"}, {w: 35, label: "Status"}, {w: 30, label: "Priority"},
			{w: 30, label: "Value"}, {w: 25, label: "Progress"},
		})
		for _, p := range data.Projects {
			value := "N/A"
			if p.HasValue {
				value = money(p.Value)
			}
			tableRow(doc, []cell{
				{w: 70, text: p.Title, align: "L"},
				{w: 35, text: p.Status},
				{w: 30, text: p.Priority},
				{w: 30, text: value},
				{w: 25, text: fmt.Sprintf("%d%%", p.Progress)},
			})
		}
		doc.Ln(10)
	}

	if data.HasFinancial {
		section(doc, "Financial Summary")
		kvTable(doc, [][2]string{
			{"Total income:", money(data.TotalIncome)},
			{"Total expenses:", money(data.TotalExpenses)},
			{"Balance:", money(data.Balance)},
		})
	}

	footer(doc)
	return writeTemp(doc)
}

func (g *Generator) FinancialReport(data ports.FinancialReportData) (string, error) {
	doc := newDoc("Financial Report")

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(pageWidth, lineHeight,
		fmt.Sprintf("Period: %s to %s", data.From.Format("2006-01-02"), data.To.Format("2006-01-02")),
		"", 1, "C", false, 0, "")
	doc.Ln(6)

	section(doc, "Executive Summary")
	kvTable(doc, [][2]string{
		{"Total income:", money(data.TotalIncome)},
		{"Total expenses:", money(data.TotalExpenses)},
		{"Net profit:", money(data.NetProfit)},
		{"Profit margin:", fmt.Sprintf("%.1f%%", data.ProfitMargin)},
	})
	doc.Ln(8)

	if len(data.IncomeByCategory) > 0 {
		section(doc, "Income by Category")
		categoryTable(doc, data.IncomeByCategory, 39, 174, 96)
		doc.Ln(8)
	}
	if len(data.ExpenseByCategory) > 0 {
		section(doc, "Expenses by Category")
		categoryTable(doc, data.ExpenseByCategory, 231, 76, 60)
		doc.Ln(8)
	}

	section(doc, "Recent Transactions")
	tableHeader(doc, 52, 73, 94, []column{
		{w: 28, label: "Date"}, {w: 66, label: "Description"}, {w: 36, label: "Category"},
		{w: 25, label: "Type"}, {w: 35, label: "Amount"},
	})
	for _, t := range data.Transactions {
		typeText := "Income"
		amount := money(t.Amount)
		if t.Type == domain.EntryExpense {
			typeText = "Expense"
			amount = "-" + amount
		}
		tableRow(doc, []cell{
			{w: 28, text: t.Date.Format("2006-01-02")},
			{w: 66, text: truncate(t.Description, 30), align: "L"},
			{w: 36, text: t.Category},
			{w: 25, text: typeText},
			{w: 35, text: amount},
		})
	}

	footer(doc)
	return writeTemp(doc)
}

func (g *Generator) ProjectReport(data ports.ProjectReportData) (string, error) {
	doc := newDoc("Project Report")

	value := "N/A"
	if data.Project.Value != 0 {
		value = money(data.Project.Value)
	}
	due := "N/A"
	if data.Project.DueDate != nil {
		due = data.Project.DueDate.Format("2006-01-02")
	}

	section(doc, "Project Information")
	kvTable(doc, [][2]string{
		{"Title:", data.Project.Title},
		{"Client:", data.ClientName},
		{"Status:", data.StatusLabel},
		{"Priority:", data.PriorityLabel},
		{"Value:", value},
		{"Progress:", fmt.Sprintf("%d%%", data.Project.Progress)},
		{"Created:", data.Project.CreatedAt.Format("2006-01-02")},
		{"Due date:", due},
	})
	doc.Ln(8)

	if data.Project.Description != "" {
		section(doc, "Description")
		paragraph(doc, data.Project.Description)
		doc.Ln(6)
	}

	if len(data.Services) > 0 {
		section(doc, "Services")
		tableHeader(doc, 155, 89, 182, []column{
			{w: 90, label: "Name"}, {w: 60, label: "Category"}, {w: 40, label: "Price"},
		})
		for _, svc := range data.Services {
			tableRow(doc, []cell{
				{w: 90, text: svc.Name, align: "L"},
				{w: 60, text: svc.Category},
				{w: 40, text: money(svc.Price)},
			})
		}
		doc.Ln(6)
	}

	if data.Project.Notes != "" {
		section(doc, "Notes")
		paragraph(doc, data.Project.Notes)
	}

	footer(doc)
	return writeTemp(doc)
}

func (g *Generator) Invoice(data ports.InvoiceData) (string, error) {
	doc := newDoc("Digital Agency")

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(pageWidth, 6, "contact@agencyhub.example | +1 (555) 010-0199", "", 1, "C", false, 0, "")
	doc.Ln(8)

	title := "INVOICE"
	if data.Quote {
		title = "QUOTE"
	}
	section(doc, title)

	kvTable(doc, [][2]string{
		{"Client:", data.ClientName},
		{"Contact:", orNA(data.ContactName)},
		{"Email:", orNA(data.ClientEmail)},
		{"Project:", data.ProjectTitle},
		{"Number:", orNA(data.Number)},
		{"Date:", data.Date},
		{"Due date:", orNA(data.DueDate)},
		{"Status:", data.Status},
	})
	doc.Ln(8)

	section(doc, "Items")
	tableHeader(doc, 41, 128, 185, []column{
		{w: 90, label: "Description"}, {w: 20, label: "Qty"}, {w: 40, label: "Unit Price"},
		{w: 40, label: "Total"},
	})
	for _, it := range data.Items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		tableRow(doc, []cell{
			{w: 90, text: it.Description, align: "L"},
			{w: 20, text: fmt.Sprintf("%d", qty)},
			{w: 40, text: money(it.UnitPrice)},
			{w: 40, text: money(float64(qty) * it.UnitPrice)},
		})
	}
	doc.Ln(6)

	totalsRow(doc, "Subtotal:", money(data.Subtotal), false)
	totalsRow(doc, "Discount:", money(data.Discount), false)
	totalsRow(doc, "Tax:", money(data.Tax), false)
	totalsRow(doc, "TOTAL:", money(data.Total), true)
	doc.Ln(8)

	if data.Notes != "" {
		section(doc, "Notes")
		paragraph(doc, data.Notes)
		doc.Ln(4)
	}

	section(doc, "Terms and Conditions")
	paragraph(doc, invoiceTerms)

	footer(doc)
	return writeTemp(doc)
}

// --- layout helpers ---

type column struct {
	w     float64
	label string
}

type cell struct {
	w     float64
	text  string
	align string
}

func newDoc(subtitle string) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(companyName+" - "+subtitle, true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(44, 62, 80)
	doc.CellFormat(pageWidth, 12, companyName, "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(52, 73, 94)
	doc.CellFormat(pageWidth, 9, subtitle, "", 1, "C", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(6)
	return doc
}

func section(doc *fpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", 13)
	doc.SetTextColor(52, 73, 94)
	doc.CellFormat(pageWidth, 9, title, "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(1)
}

func kvTable(doc *fpdf.Fpdf, rows [][2]string) {
	doc.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		doc.SetFillColor(236, 240, 241)
		doc.CellFormat(50, lineHeight, row[0], "1", 0, "L", true, 0, "")
		doc.CellFormat(pageWidth-50, lineHeight, row[1], "1", 1, "L", false, 0, "")
	}
}

func tableHeader(doc *fpdf.Fpdf, r, g, b int, cols []column) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(r, g, b)
	doc.SetTextColor(255, 255, 255)
	for _, c := range cols {
		doc.CellFormat(c.w, lineHeight, c.label, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 9)
	doc.SetFillColor(245, 245, 220)
}

func tableRow(doc *fpdf.Fpdf, cells []cell) {
	for _, c := range cells {
		align := c.align
		if align == "" {
			align = "C"
		}
		doc.CellFormat(c.w, lineHeight-1, c.text, "1", 0, align, true, 0, "")
	}
	doc.Ln(-1)
}

func categoryTable(doc *fpdf.Fpdf, shares []ports.CategoryShare, r, g, b int) {
	tableHeader(doc, r, g, b, []column{
		{w: 95, label: "Category"}, {w: 55, label: "Amount"}, {w: 40, label: "Share"},
	})
	for _, share := range shares {
		tableRow(doc, []cell{
			{w: 95, text: share.Category, align: "L"},
			{w: 55, text: money(share.Amount)},
			{w: 40, text: fmt.Sprintf("%.1f%%", share.Percent)},
		})
	}
}

func totalsRow(doc *fpdf.Fpdf, label, value string, emphasis bool) {
	doc.CellFormat(pageWidth-80, lineHeight, "", "", 0, "", false, 0, "")
	if emphasis {
		doc.SetFont("Helvetica", "B", 12)
		doc.SetFillColor(243, 156, 18)
		doc.SetTextColor(255, 255, 255)
	} else {
		doc.SetFont("Helvetica", "", 10)
		doc.SetFillColor(255, 255, 255)
	}
	doc.CellFormat(40, lineHeight, label, "1", 0, "R", emphasis, 0, "")
	doc.CellFormat(40, lineHeight, value, "1", 1, "R", emphasis, 0, "")
	doc.SetTextColor(0, 0, 0)
}

func paragraph(doc *fpdf.Fpdf, text string) {
	doc.SetFont("Helvetica", "", 10)
	doc.MultiCell(pageWidth, 6, text, "", "L", false)
}

func footer(doc *fpdf.Fpdf) {
	doc.Ln(12)
	doc.SetFont("Helvetica", "I", 9)
	doc.SetTextColor(127, 140, 141)
	doc.CellFormat(pageWidth, 6,
		fmt.Sprintf("Generated on %s", time.Now().UTC().Format("2006-01-02 15:04")),
		"", 1, "C", false, 0, "")
	doc.SetTextColor(0, 0, 0)
}

func writeTemp(doc *fpdf.Fpdf) (string, error) {
	f, err := os.CreateTemp("", "agencyhub_*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return "", err
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return path, nil
}

func money(v float64) string {
	return fmt.Sprintf("$ %.2f", v)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
