package domain

import "time"

// Service is a billable catalog item. ProjectID, when set, attaches the
// service to a project so it shows up on that project's reports and invoices.
type Service struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Category    string    `json:"category" bson:"category"`
	Price       float64   `json:"price" bson:"price"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Color       string    `json:"color,omitempty" bson:"color,omitempty"`
	ProjectID   string    `json:"project_id,omitempty" bson:"project_id,omitempty"`
	Active      bool      `json:"active" bson:"active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
