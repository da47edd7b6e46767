package ports

import (
	"context"

	"github.com/Pacdac/task-management-app/internal/core/domain"
)

// The three taxonomy repositories persist the small lookup tables tasks are
// classified by. Each must enforce name uniqueness at the storage layer
// (priorities additionally enforce value uniqueness) and convert collisions
// into the matching Err*Exists sentinel.

type StatusRepository interface {
	Create(ctx context.Context, status *domain.TaskStatus) (*domain.TaskStatus, error)
	Update(ctx context.Context, status *domain.TaskStatus) (*domain.TaskStatus, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.TaskStatus, error)
	FindByName(ctx context.Context, name string) (*domain.TaskStatus, error)
	FindAll(ctx context.Context) ([]*domain.TaskStatus, error)
}

type PriorityRepository interface {
	Create(ctx context.Context, priority *domain.TaskPriority) (*domain.TaskPriority, error)
	Update(ctx context.Context, priority *domain.TaskPriority) (*domain.TaskPriority, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.TaskPriority, error)
	FindByName(ctx context.Context, name string) (*domain.TaskPriority, error)
	FindByValue(ctx context.Context, value int) (*domain.TaskPriority, error)
	FindAll(ctx context.Context) ([]*domain.TaskPriority, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.TaskCategory) (*domain.TaskCategory, error)
	Update(ctx context.Context, category *domain.TaskCategory) (*domain.TaskCategory, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.TaskCategory, error)
	FindByName(ctx context.Context, name string) (*domain.TaskCategory, error)
	FindAll(ctx context.Context) ([]*domain.TaskCategory, error)
}
