package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

// BoardHandler handles CRUD requests for workflow boards.
type BoardHandler struct {
	service ports.BoardService
}

func NewBoardHandler(service ports.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

type createBoardRequest struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Statuses    map[string]string `json:"statuses"`
	Color       string            `json:"color"`
}

// Create handles POST /api/boards.
//
// @Summary      Create a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBoardRequest  true  "Board details"
// @Success      201   {object}  domain.Board
// @Failure      400   {object}  map[string]string
// @Router       /api/boards [post]
func (h *BoardHandler) Create(c echo.Context) error {
	var req createBoardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	board, err := h.service.Create(c.Request().Context(), &domain.Board{
		Name:        req.Name,
		Description: req.Description,
		Statuses:    req.Statuses,
		Color:       req.Color,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, board)
}

// List handles GET /api/boards. Pass ?active=true to filter out inactive
// boards.
//
// @Summary      List boards
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        active  query    string  false  "Return only active boards"
// @Success      200     {array}  domain.Board
// @Router       /api/boards [get]
func (h *BoardHandler) List(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"
	boards, err := h.service.List(c.Request().Context(), activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, boards)
}

// Get handles GET /api/boards/:id.
//
// @Summary      Get a board
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Board ID"
// @Success      200  {object}  domain.Board
// @Failure      404  {object}  map[string]string
// @Router       /api/boards/{id} [get]
func (h *BoardHandler) Get(c echo.Context) error {
	board, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, board)
}

// Update handles PUT /api/boards/:id with partial-update semantics.
//
// @Summary      Update a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Board ID"
// @Param        body  body      ports.BoardPatch  true  "Fields to update"
// @Success      200   {object}  domain.Board
// @Failure      404   {object}  map[string]string
// @Router       /api/boards/{id} [put]
func (h *BoardHandler) Update(c echo.Context) error {
	var patch ports.BoardPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	board, err := h.service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, board)
}

// Delete handles DELETE /api/boards/:id.
//
// @Summary      Delete a board
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Board ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /api/boards/{id} [delete]
func (h *BoardHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
