package ports

import (
	"context"

	"github.com/Pacdac/task-management-app/internal/core/domain"
)

// UserRepository is the credential store: the single source of truth for
// identity and role state. Implementations must enforce username and email
// uniqueness at the storage layer (unique index), converting a late collision
// into domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
