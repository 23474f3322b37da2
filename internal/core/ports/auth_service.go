package ports

import (
	"context"

	"github.com/boardhub/board-api/internal/core/domain"
)

// SignUpInput carries the signup request fields. Role is what the caller
// asked for; the service ignores it and always persists the default
// unprivileged role.
type SignUpInput struct {
	Username string
	Password string
	Email    string
	Role     string
}

// AuthService defines the account lifecycle operations.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	// SignIn returns the issued token and the authenticated user. Any
	// credential mismatch, including an unknown email, fails with
	// domain.ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (string, *domain.User, error)
}
