package ports

import (
	"context"

	"github.com/Pacdac/task-management-app/internal/core/domain"
)

// CreateUserInput carries the fields accepted by direct user creation.
// Role may name any known role; it defaults to USER when empty.
type CreateUserInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// UpdateUserInput carries a full profile update. Role and Password are
// applied only when non-empty; username and email are re-validated for
// uniqueness when changed.
type UpdateUserInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type UserService interface {
	GetAll(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
