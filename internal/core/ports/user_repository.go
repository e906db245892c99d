package ports

import (
	"context"

	"github.com/agenciahub/backend/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
// Create must fail with domain.ErrEmailTaken when the email already exists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
