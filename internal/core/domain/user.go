package domain

import "time"

const (
	RoleAdmin       = "admin"
	RoleManager     = "manager"
	RoleOperational = "operational"
	RoleFinancial   = "financial"
	RoleClient      = "client"
)

// ValidRole reports whether role is one of the known role values.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleOperational, RoleFinancial, RoleClient:
		return true
	}
	return false
}

// User models an authenticated actor in the system.
type User struct {
	ID           string         `json:"id" bson:"_id"`
	Email        string         `json:"email" bson:"email"`
	PasswordHash string         `json:"-" bson:"password_hash"`
	Name         string         `json:"name" bson:"name"`
	Role         string         `json:"role" bson:"role"`
	Active       bool           `json:"active" bson:"active"`
	Avatar       string         `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Permissions  map[string]any `json:"permissions,omitempty" bson:"permissions,omitempty"`
	CreatedAt    time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" bson:"updated_at"`
}
