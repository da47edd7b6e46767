package ports

import (
	"context"
	"time"

	"github.com/Pacdac/task-management-app/internal/core/domain"
)

// TaskRepository persists tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	FindAll(ctx context.Context) ([]*domain.Task, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Task, error)
	// SearchByTitle matches the keyword case-insensitively anywhere in the title.
	SearchByTitle(ctx context.Context, keyword string) ([]*domain.Task, error)
	// FindOverdue returns the user's tasks whose due date is before the cutoff.
	FindOverdue(ctx context.Context, userID string, before time.Time) ([]*domain.Task, error)
}
