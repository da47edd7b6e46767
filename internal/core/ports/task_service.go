package ports

import (
	"context"
	"time"

	"github.com/Pacdac/task-management-app/internal/core/domain"
)

// TaskInput is the write payload for creating or updating a task. Referenced
// user, status and category ids must name existing records.
type TaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    int
	UserID      string
	StatusID    string
	CategoryID  string
}

// TaskDetail is a task enriched with the names of its references, resolved
// at read time. Names are left empty when a reference dangles.
type TaskDetail struct {
	domain.Task
	Username     string `json:"username,omitempty"`
	StatusName   string `json:"status_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
}

type TaskService interface {
	GetAll(ctx context.Context) ([]*TaskDetail, error)
	GetByID(ctx context.Context, id string) (*TaskDetail, error)
	GetByUserID(ctx context.Context, userID string) ([]*TaskDetail, error)
	Create(ctx context.Context, input TaskInput) (*TaskDetail, error)
	Update(ctx context.Context, id string, input TaskInput) (*TaskDetail, error)
	Delete(ctx context.Context, id string) error
	SearchByTitle(ctx context.Context, keyword string) ([]*TaskDetail, error)
	GetOverdue(ctx context.Context, userID string) ([]*TaskDetail, error)
}
