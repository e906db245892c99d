package ports

import (
	"time"

	"github.com/agenciahub/backend/internal/core/domain"
)

// Patch types model partial updates: only non-nil fields overwrite stored
// values. The JSON shape mirrors the entity, every field optional.

type ClientPatch struct {
	Name        *string         `json:"name"`
	ContactName *string         `json:"contact_name"`
	City        *string         `json:"city"`
	Phone       *string         `json:"phone"`
	Email       *string         `json:"email"`
	PaymentData *map[string]any `json:"payment_data"`
	Avatar      *string         `json:"avatar"`
	Status      *string         `json:"status"`
	Notes       *string         `json:"notes"`
}

type ProjectPatch struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	Priority    *domain.Priority `json:"priority"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	DueDate     *time.Time       `json:"due_date"`
	Value       *float64         `json:"value"`
	Progress    *int             `json:"progress"`
	Notes       *string          `json:"notes"`
	AssignedTo  *string          `json:"assigned_to"`
	BoardID     *string          `json:"board_id"`
}

type EntryPatch struct {
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Amount      *float64   `json:"amount"`
	Date        *time.Time `json:"date"`
	Status      *string    `json:"status"`
	ClientID    *string    `json:"client_id"`
}

type ServicePatch struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Color       *string  `json:"color"`
	ProjectID   *string  `json:"project_id"`
	Active      *bool    `json:"active"`
}

type BoardPatch struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Statuses    *map[string]string `json:"statuses"`
	Color       *string            `json:"color"`
	Active      *bool              `json:"active"`
}
