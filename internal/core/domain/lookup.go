package domain

import (
	"errors"
	"time"
)

// TaskStatus is a lookup-table entry naming a workflow state (e.g. "To Do").
type TaskStatus struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskPriority is a lookup-table entry mapping a name to a numeric value
// (1-5, unique) with an optional display order for UI sorting.
type TaskPriority struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Value        int       `json:"value"`
	Description  string    `json:"description,omitempty"`
	Color        string    `json:"color,omitempty"`
	DisplayOrder int       `json:"display_order,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TaskCategory is a lookup-table entry grouping tasks by topic.
type TaskCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var ErrStatusNotFound = errors.New("task status not found")
var ErrStatusExists = errors.New("task status already exists")
var ErrPriorityNotFound = errors.New("task priority not found")
var ErrPriorityExists = errors.New("task priority already exists")
var ErrCategoryNotFound = errors.New("task category not found")
var ErrCategoryExists = errors.New("task category already exists")
