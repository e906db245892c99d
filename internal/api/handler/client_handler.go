package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agenciahub/backend/internal/core/domain"
	"github.com/agenciahub/backend/internal/core/ports"
)

// ClientHandler handles CRUD requests for agency clients.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

type createClientRequest struct {
	Name        string         `json:"name"         validate:"required"`
	ContactName string         `json:"contact_name" validate:"required"`
	City        string         `json:"city"         validate:"required"`
	Phone       string         `json:"phone"        validate:"required"`
	Email       string         `json:"email"        validate:"omitempty,email"`
	PaymentData map[string]any `json:"payment_data"`
	Avatar      string         `json:"avatar"`
	Status      string         `json:"status"`
	Notes       string         `json:"notes"`
}

// Create handles POST /api/clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), &domain.Client{
		Name:        req.Name,
		ContactName: req.ContactName,
		City:        req.City,
		Phone:       req.Phone,
		Email:       req.Email,
		PaymentData: req.PaymentData,
		Avatar:      req.Avatar,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, client)
}

// List handles GET /api/clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Client
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Get handles GET /api/clients/:id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  map[string]string
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Update handles PUT /api/clients/:id. Only fields present in the payload
// overwrite stored values.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Client ID"
// @Param        body  body      ports.ClientPatch  true  "Fields to update"
// @Success      200   {object}  domain.Client
// @Failure      404   {object}  map[string]string
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var patch ports.ClientPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	client, err := h.service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /api/clients/:id.
//
// @Summary      Delete a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Client ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
