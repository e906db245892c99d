package ports

import (
	"context"

	"github.com/agenciahub/backend/internal/core/domain"
)

// RegisterInput carries the fields a new account is created from.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// TokenPair is the credential set handed out on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	// Refresh verifies the presented token and issues a fresh pair for the
	// same subject, provided the user still exists and is active.
	Refresh(ctx context.Context, token string) (*TokenPair, error)
	// Authenticate resolves a bearer token to an active user record.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
