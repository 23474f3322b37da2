package ports

import (
	"context"

	"github.com/boardhub/board-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. FindByEmail matches
// the stored email exactly (case-sensitive). Create must reject a duplicate
// email with domain.ErrEmailExists; the storage layer is expected to enforce
// uniqueness atomically since the service-level check-then-insert is not.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
