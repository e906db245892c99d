package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/agenciahub/backend/internal/core/ports"
)

const defaultRecentProjects = 5

// DashboardHandler exposes the read-only analytical endpoints.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Metrics handles GET /api/dashboard/metrics.
//
// @Summary      Headline dashboard metrics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardMetrics
// @Router       /api/dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c echo.Context) error {
	metrics, err := h.service.Metrics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, metrics)
}

// RecentProjects handles GET /api/dashboard/recent-projects. The limit query
// parameter caps the result; invalid or missing values fall back to 5.
//
// @Summary      Most recently created projects
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query    int  false  "Maximum number of projects (default 5)"
// @Success      200    {array}  domain.Project
// @Router       /api/dashboard/recent-projects [get]
func (h *DashboardHandler) RecentProjects(c echo.Context) error {
	limit := defaultRecentProjects
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	projects, err := h.service.RecentProjects(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// FinancialSummary handles GET /api/dashboard/financial-summary.
//
// @Summary      Rolling six-month income/expense summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.MonthSummary
// @Router       /api/dashboard/financial-summary [get]
func (h *DashboardHandler) FinancialSummary(c echo.Context) error {
	summary, err := h.service.FinancialSummary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// RevenueByClient handles GET /api/dashboard/revenue-by-client.
//
// @Summary      Income totals ranked by client
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.ClientRevenue
// @Router       /api/dashboard/revenue-by-client [get]
func (h *DashboardHandler) RevenueByClient(c echo.Context) error {
	revenue, err := h.service.RevenueByClient(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, revenue)
}

// ProjectTimeline handles GET /api/dashboard/project-timeline.
//
// @Summary      Open projects due within 30 days
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.TimelineEntry
// @Router       /api/dashboard/project-timeline [get]
func (h *DashboardHandler) ProjectTimeline(c echo.Context) error {
	timeline, err := h.service.ProjectTimeline(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, timeline)
}

// FinancialCategories handles GET /api/dashboard/financial-categories.
//
// @Summary      Income and expense totals by category
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.CategoryBreakdown
// @Router       /api/dashboard/financial-categories [get]
func (h *DashboardHandler) FinancialCategories(c echo.Context) error {
	breakdown, err := h.service.FinancialCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, breakdown)
}
