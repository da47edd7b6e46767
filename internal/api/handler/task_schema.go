package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// dueDateFormat is the date-only layout accepted for task due dates.
const dueDateFormat = "2006-01-02"

type taskRequest struct {
	Title       string `json:"title"       validate:"required,max=100"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    int    `json:"priority"    validate:"omitempty,gte=1,lte=5"`
	UserID      string `json:"user_id"`
	StatusID    string `json:"status_id"`
	CategoryID  string `json:"category_id"`
}

// Response-only type owned by the transport layer; kept separate from the
// service types so the JSON contract is not coupled to internal changes.
type taskResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	DueDate      string     `json:"due_date,omitempty"`
	Priority     int        `json:"priority,omitempty"`
	UserID       string     `json:"user_id,omitempty"`
	Username     string     `json:"username,omitempty"`
	StatusID     string     `json:"status_id,omitempty"`
	StatusName   string     `json:"status_name,omitempty"`
	CategoryID   string     `json:"category_id,omitempty"`
	CategoryName string     `json:"category_name,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
