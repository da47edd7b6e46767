package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Pacdac/task-management-app/internal/api/metrics"
	"github.com/Pacdac/task-management-app/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// GetAll lists all tasks.
//
// @Summary  List tasks
// @Tags     tasks
// @Produce  json
// @Success  200  {array}  taskResponse
// @Router   /api/tasks [get]
func (h *TaskHandler) GetAll(c echo.Context) error {
	tasks, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// GetByID returns a single task with its reference names resolved.
//
// @Summary  Get task by id
// @Tags     tasks
// @Produce  json
// @Param    id   path      string  true  "Task ID"
// @Success  200  {object}  taskResponse
// @Failure  404  {object}  errorResponse
// @Router   /api/tasks/{id} [get]
func (h *TaskHandler) GetByID(c echo.Context) error {
	task, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// GetByUser lists the tasks owned by a user.
//
// @Summary  List tasks by user
// @Tags     tasks
// @Produce  json
// @Param    userId  path     string  true  "User ID"
// @Success  200     {array}  taskResponse
// @Failure  404     {object} errorResponse
// @Router   /api/tasks/user/{userId} [get]
func (h *TaskHandler) GetByUser(c echo.Context) error {
	tasks, err := h.service.GetByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// Create creates a new task.
//
// @Summary  Create task
// @Tags     tasks
// @Accept   json
// @Produce  json
// @Param    body  body      taskRequest  true  "Task data"
// @Success  201   {object}  taskResponse
// @Failure  400   {object}  errorResponse
// @Failure  404   {object}  errorResponse
// @Router   /api/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	input, err := toTaskInput(req)
	if err != nil {
		return err
	}

	task, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Update replaces a task.
//
// @Summary  Update task
// @Tags     tasks
// @Accept   json
// @Produce  json
// @Param    id    path      string       true  "Task ID"
// @Param    body  body      taskRequest  true  "Task data"
// @Success  200   {object}  taskResponse
// @Failure  400   {object}  errorResponse
// @Failure  404   {object}  errorResponse
// @Router   /api/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	input, err := toTaskInput(req)
	if err != nil {
		return err
	}

	task, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete removes a task permanently.
//
// @Summary  Delete task
// @Tags     tasks
// @Param    id  path  string  true  "Task ID"
// @Success  204
// @Failure  404  {object}  errorResponse
// @Router   /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Search lists tasks whose title contains the keyword, case-insensitively.
//
// @Summary  Search tasks by title
// @Tags     tasks
// @Produce  json
// @Param    keyword  query    string  true  "Search keyword"
// @Success  200      {array}  taskResponse
// @Router   /api/tasks/search [get]
func (h *TaskHandler) Search(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	if keyword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "keyword is required")
	}
	tasks, err := h.service.SearchByTitle(c.Request().Context(), keyword)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// Overdue lists a user's tasks due before today.
//
// @Summary  List overdue tasks
// @Tags     tasks
// @Produce  json
// @Param    userId  path     string  true  "User ID"
// @Success  200     {array}  taskResponse
// @Failure  404     {object} errorResponse
// @Router   /api/tasks/overdue/{userId} [get]
func (h *TaskHandler) Overdue(c echo.Context) error {
	tasks, err := h.service.GetOverdue(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponses(tasks))
}
