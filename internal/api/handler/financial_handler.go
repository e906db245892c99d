package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

// FinancialHandler handles CRUD requests for income and expense entries.
type FinancialHandler struct {
	service ports.FinancialService
}

func NewFinancialHandler(service ports.FinancialService) *FinancialHandler {
	return &FinancialHandler{service: service}
}

type createEntryRequest struct {
	Type        string    `json:"type"        validate:"required,oneof=income expense"`
	Description string    `json:"description" validate:"required"`
	Category    string    `json:"category"    validate:"required"`
	Amount      float64   `json:"amount"      validate:"required,gt=0"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	ClientID    string    `json:"client_id"`
}

// Create handles POST /api/financial.
//
// @Summary      Create a financial entry
// @Tags         financial
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEntryRequest  true  "Entry details"
// @Success      201   {object}  domain.FinancialEntry
// @Failure      400   {object}  map[string]string
// @Router       /api/financial [post]
func (h *FinancialHandler) Create(c echo.Context) error {
	var req createEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Create(c.Request().Context(), &domain.FinancialEntry{
		Type:        domain.EntryType(req.Type),
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Status:      req.Status,
		ClientID:    req.ClientID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, entry)
}

// List handles GET /api/financial.
//
// @Summary      List financial entries
// @Tags         financial
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.FinancialEntry
// @Router       /api/financial [get]
func (h *FinancialHandler) List(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Get handles GET /api/financial/:id.
//
// @Summary      Get a financial entry
// @Tags         financial
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Entry ID"
// @Success      200  {object}  domain.FinancialEntry
// @Failure      404  {object}  map[string]string
// @Router       /api/financial/{id} [get]
func (h *FinancialHandler) Get(c echo.Context) error {
	entry, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// Update handles PUT /api/financial/:id with partial-update semantics. The
// entry type is fixed at creation and cannot be changed.
//
// @Summary      Update a financial entry
// @Tags         financial
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Entry ID"
// @Param        body  body      ports.EntryPatch  true  "Fields to update"
// @Success      200   {object}  domain.FinancialEntry
// @Failure      404   {object}  map[string]string
// @Router       /api/financial/{id} [put]
func (h *FinancialHandler) Update(c echo.Context) error {
	var patch ports.EntryPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	entry, err := h.service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /api/financial/:id.
//
// @Summary      Delete a financial entry
// @Tags         financial
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Entry ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /api/financial/{id} [delete]
func (h *FinancialHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
