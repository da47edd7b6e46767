package domain

import (
	"errors"
	"time"
)

// Task is the core aggregate of the system: a unit of work owned by a user,
// optionally classified by a status, a category and a numeric priority (1-5).
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    int        `json:"priority,omitempty"`
	UserID      string     `json:"user_id,omitempty"`
	StatusID    string     `json:"status_id,omitempty"`
	CategoryID  string     `json:"category_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

var ErrTaskNotFound = errors.New("task not found")
