package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Pacdac/task-management-app/internal/core/ports"
)

// toTaskInput converts a transport request into a service input, parsing the
// date-only due date. An empty due date means no due date.
func toTaskInput(req taskRequest) (ports.TaskInput, error) {
	input := ports.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		UserID:      req.UserID,
		StatusID:    req.StatusID,
		CategoryID:  req.CategoryID,
	}
	if req.DueDate != "" {
		due, err := time.Parse(dueDateFormat, req.DueDate)
		if err != nil {
			return ports.TaskInput{}, echo.NewHTTPError(http.StatusBadRequest, "due_date must be formatted as YYYY-MM-DD")
		}
		due = due.UTC()
		input.DueDate = &due
	}
	return input, nil
}

func toTaskResponse(detail *ports.TaskDetail) taskResponse {
	resp := taskResponse{
		ID:           detail.ID,
		Title:        detail.Title,
		Description:  detail.Description,
		Priority:     detail.Priority,
		UserID:       detail.UserID,
		Username:     detail.Username,
		StatusID:     detail.StatusID,
		StatusName:   detail.StatusName,
		CategoryID:   detail.CategoryID,
		CategoryName: detail.CategoryName,
		CreatedAt:    detail.CreatedAt,
		UpdatedAt:    detail.UpdatedAt,
	}
	if detail.DueDate != nil {
		resp.DueDate = detail.DueDate.Format(dueDateFormat)
	}
	return resp
}

func toTaskResponses(details []*ports.TaskDetail) []taskResponse {
	out := make([]taskResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toTaskResponse(d))
	}
	return out
}
