package domain

import "time"

// Client is an agency customer. Status is a free-form string ("active" by
// default); deactivation only filters list views, direct lookup still works.
type Client struct {
	ID          string         `json:"id" bson:"_id"`
	Name        string         `json:"name" bson:"name"`
	ContactName string         `json:"contact_name" bson:"contact_name"`
	City        string         `json:"city" bson:"city"`
	Phone       string         `json:"phone" bson:"phone"`
	Email       string         `json:"email,omitempty" bson:"email,omitempty"`
	PaymentData map[string]any `json:"payment_data,omitempty" bson:"payment_data,omitempty"`
	Avatar      string         `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Status      string         `json:"status" bson:"status"`
	Notes       string         `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}

const ClientStatusActive = "active"
