package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

// ProjectHandler handles CRUD requests for projects.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Description string     `json:"description"`
	ClientID    string     `json:"client_id"   validate:"required"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	DueDate     *time.Time `json:"due_date"`
	Value       float64    `json:"value"       validate:"omitempty,gt=0"`
	Progress    int        `json:"progress"    validate:"omitempty,min=0,max=100"`
	Notes       string     `json:"notes"`
	AssignedTo  string     `json:"assigned_to"`
	BoardID     string     `json:"board_id"`
}

// Create handles POST /api/projects. The referenced client must exist.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), &domain.Project{
		Title:       req.Title,
		Description: req.Description,
		ClientID:    req.ClientID,
		Status:      req.Status,
		Priority:    domain.Priority(req.Priority),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		DueDate:     req.DueDate,
		Value:       req.Value,
		Progress:    req.Progress,
		Notes:       req.Notes,
		AssignedTo:  req.AssignedTo,
		BoardID:     req.BoardID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, project)
}

// List handles GET /api/projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Project
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get handles GET /api/projects/:id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  map[string]string
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Update handles PUT /api/projects/:id with partial-update semantics.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Project ID"
// @Param        body  body      ports.ProjectPatch  true  "Fields to update"
// @Success      200   {object}  domain.Project
// @Failure      404   {object}  map[string]string
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var patch ports.ProjectPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/projects/:id.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Project ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
