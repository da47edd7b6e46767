package ports

import (
	"context"

	"github.com/Pacdac/task-management-app/internal/core/domain"
)

// StatusInput is the write payload for a task status.
type StatusInput struct {
	Name        string
	Description string
	Color       string
}

// PriorityInput is the write payload for a task priority.
type PriorityInput struct {
	Name         string
	Value        int
	Description  string
	Color        string
	DisplayOrder int
}

// CategoryInput is the write payload for a task category.
type CategoryInput struct {
	Name        string
	Description string
	Color       string
}

type StatusService interface {
	GetAll(ctx context.Context) ([]*domain.TaskStatus, error)
	GetByID(ctx context.Context, id string) (*domain.TaskStatus, error)
	GetByName(ctx context.Context, name string) (*domain.TaskStatus, error)
	Create(ctx context.Context, input StatusInput) (*domain.TaskStatus, error)
	Update(ctx context.Context, id string, input StatusInput) (*domain.TaskStatus, error)
	Delete(ctx context.Context, id string) error
}

type PriorityService interface {
	GetAll(ctx context.Context) ([]*domain.TaskPriority, error)
	GetByID(ctx context.Context, id string) (*domain.TaskPriority, error)
	GetByName(ctx context.Context, name string) (*domain.TaskPriority, error)
	GetByValue(ctx context.Context, value int) (*domain.TaskPriority, error)
	Create(ctx context.Context, input PriorityInput) (*domain.TaskPriority, error)
	Update(ctx context.Context, id string, input PriorityInput) (*domain.TaskPriority, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	GetAll(ctx context.Context) ([]*domain.TaskCategory, error)
	GetByID(ctx context.Context, id string) (*domain.TaskCategory, error)
	GetByName(ctx context.Context, name string) (*domain.TaskCategory, error)
	Create(ctx context.Context, input CategoryInput) (*domain.TaskCategory, error)
	Update(ctx context.Context, id string, input CategoryInput) (*domain.TaskCategory, error)
	Delete(ctx context.Context, id string) error
}

// LookupCache caches the full taxonomy lists, which are small and read-heavy.
// Implementations treat cache errors as misses; the repositories stay the
// source of truth.
type LookupCache interface {
	GetList(ctx context.Context, key string, dest interface{}) (bool, error)
	SetList(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, key string) error
}
