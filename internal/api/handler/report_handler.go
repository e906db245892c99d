package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/agenciahub/backend/internal/api/metrics"
	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

const dateLayout = "2006-01-02"

// ReportHandler handles the service catalog, report records, and PDF
// document generation.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// --- Service catalog ---

type createServiceRequest struct {
	Name        string  `json:"name"     validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price"    validate:"required,gt=0"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	ProjectID   string  `json:"project_id"`
}

// CreateService handles POST /api/reports/services.
//
// @Summary      Create a catalog service
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  map[string]string
// @Router       /api/reports/services [post]
func (h *ReportHandler) CreateService(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.service.CreateService(c.Request().Context(), &domain.Service{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Color:       req.Color,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, svc)
}

// ListServices handles GET /api/reports/services. Pass ?active=true to skip
// deactivated services.
//
// @Summary      List catalog services
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        active  query    string  false  "Return only active services"
// @Success      200     {array}  domain.Service
// @Router       /api/reports/services [get]
func (h *ReportHandler) ListServices(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"
	services, err := h.service.ListServices(c.Request().Context(), activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// GetService handles GET /api/reports/services/:id.
//
// @Summary      Get a catalog service
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  map[string]string
// @Router       /api/reports/services/{id} [get]
func (h *ReportHandler) GetService(c echo.Context) error {
	svc, err := h.service.GetService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// UpdateService handles PUT /api/reports/services/:id with partial-update
// semantics.
//
// @Summary      Update a catalog service
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Service ID"
// @Param        body  body      ports.ServicePatch  true  "Fields to update"
// @Success      200   {object}  domain.Service
// @Failure      404   {object}  map[string]string
// @Router       /api/reports/services/{id} [put]
func (h *ReportHandler) UpdateService(c echo.Context) error {
	var patch ports.ServicePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	svc, err := h.service.UpdateService(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// DeleteService handles DELETE /api/reports/services/:id.
//
// @Summary      Delete a catalog service
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Service ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /api/reports/services/{id} [delete]
func (h *ReportHandler) DeleteService(c echo.Context) error {
	if err := h.service.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Report records ---

type generateReportRequest struct {
	ClientID string              `json:"client_id" validate:"required"`
	Services []domain.ReportItem `json:"services"  validate:"required,min=1"`
}

// GenerateReport handles POST /api/reports/generate. It records which
// services were billed to a client, attributed to the calling user.
//
// @Summary      Record a billing report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateReportRequest  true  "Billed services"
// @Success      201   {object}  domain.Report
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/reports/generate [post]
func (h *ReportHandler) GenerateReport(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req generateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	report, err := h.service.GenerateReport(c.Request().Context(), user.ID, req.ClientID, req.Services)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, report)
}

// ListReports handles GET /api/reports, newest first.
//
// @Summary      List billing reports
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Report
// @Router       /api/reports [get]
func (h *ReportHandler) ListReports(c echo.Context) error {
	reports, err := h.service.ListReports(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

// GetReport handles GET /api/reports/:id.
//
// @Summary      Get a billing report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Report ID"
// @Success      200  {object}  domain.Report
// @Failure      404  {object}  map[string]string
// @Router       /api/reports/{id} [get]
func (h *ReportHandler) GetReport(c echo.Context) error {
	report, err := h.service.GetReport(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// --- PDF documents ---

// ClientReportPDF handles GET /api/reports/client/:id.
//
// @Summary      Client report PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "Client ID"
// @Success      200  {file}  file
// @Failure      404  {object}  map[string]string
// @Router       /api/reports/client/{id} [get]
func (h *ReportHandler) ClientReportPDF(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.DocumentGenerationDuration.WithLabelValues("client_report"))
	doc, err := h.service.ClientReportPDF(c.Request().Context(), c.Param("id"))
	timer.ObserveDuration()
	if err != nil {
		return err
	}
	defer h.service.Cleanup(doc)

	metrics.DocumentsGeneratedTotal.WithLabelValues("client_report").Inc()
	return c.Attachment(doc.Path, doc.Filename)
}

// FinancialReportPDF handles GET /api/reports/financial. The from/to query
// parameters (YYYY-MM-DD) bound the period; when absent the report covers
// the 30 days ending at "to", defaulting to today.
//
// @Summary      Financial report PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        from  query  string  false  "Period start (YYYY-MM-DD)"
// @Param        to    query  string  false  "Period end (YYYY-MM-DD)"
// @Success      200   {file}  file
// @Failure      400   {object}  map[string]string
// @Router       /api/reports/financial [get]
func (h *ReportHandler) FinancialReportPDF(c echo.Context) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.DocumentGenerationDuration.WithLabelValues("financial_report"))
	doc, err := h.service.FinancialReportPDF(c.Request().Context(), from, to)
	timer.ObserveDuration()
	if err != nil {
		return err
	}
	defer h.service.Cleanup(doc)

	metrics.DocumentsGeneratedTotal.WithLabelValues("financial_report").Inc()
	return c.Attachment(doc.Path, doc.Filename)
}

// ProjectReportPDF handles GET /api/reports/project/:id.
//
// @Summary      Project report PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "Project ID"
// @Success      200  {file}  file
// @Failure      404  {object}  map[string]string
// @Router       /api/reports/project/{id} [get]
func (h *ReportHandler) ProjectReportPDF(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.DocumentGenerationDuration.WithLabelValues("project_report"))
	doc, err := h.service.ProjectReportPDF(c.Request().Context(), c.Param("id"))
	timer.ObserveDuration()
	if err != nil {
		return err
	}
	defer h.service.Cleanup(doc)

	metrics.DocumentsGeneratedTotal.WithLabelValues("project_report").Inc()
	return c.Attachment(doc.Path, doc.Filename)
}

// InvoicePDF handles POST /api/reports/invoice. The payload's type field
// selects between an invoice and a quote.
//
// @Summary      Invoice or quote PDF
// @Tags         reports
// @Accept       json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        body  body   ports.InvoiceInput  true  "Invoice details"
// @Success      200   {file}  file
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/reports/invoice [post]
func (h *ReportHandler) InvoicePDF(c echo.Context) error {
	var input ports.InvoiceInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if input.ClientID == "" || input.ProjectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "client_id and project_id are required")
	}

	docType := "invoice"
	if input.DocType == "quote" {
		docType = "quote"
	}

	timer := prometheus.NewTimer(metrics.DocumentGenerationDuration.WithLabelValues(docType))
	doc, err := h.service.InvoicePDF(c.Request().Context(), input)
	timer.ObserveDuration()
	if err != nil {
		return err
	}
	defer h.service.Cleanup(doc)

	metrics.DocumentsGeneratedTotal.WithLabelValues(docType).Inc()
	return c.Attachment(doc.Path, doc.Filename)
}

// parseDateRange resolves the from/to query parameters. "to" defaults to
// today and "from" to 30 days before the resolved "to", so a lone historical
// "to" yields the 30-day window ending on that date.
func parseDateRange(c echo.Context) (from, to time.Time, err error) {
	to = time.Now().UTC()
	if raw := c.QueryParam("to"); raw != "" {
		to, err = time.Parse(dateLayout, raw)
		if err != nil {
			return from, to, echo.NewHTTPError(http.StatusBadRequest, "to must be YYYY-MM-DD")
		}
	}

	from = to.AddDate(0, 0, -30)
	if raw := c.QueryParam("from"); raw != "" {
		from, err = time.Parse(dateLayout, raw)
		if err != nil {
			return from, to, echo.NewHTTPError(http.StatusBadRequest, "from must be YYYY-MM-DD")
		}
	}

	if to.Before(from) {
		return from, to, echo.NewHTTPError(http.StatusBadRequest, "to must not precede from")
	}
	return from, to, nil
}
