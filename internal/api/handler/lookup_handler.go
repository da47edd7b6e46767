package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Pacdac/task-management-app/internal/core/ports"
)

type statusRequest struct {
	Name        string `json:"name"        validate:"required,max=50"`
	Description string `json:"description"`
	Color       string `json:"color"       validate:"max=20"`
}

type priorityRequest struct {
	Name         string `json:"name"          validate:"required,max=50"`
	Value        int    `json:"value"         validate:"required,gte=1,lte=5"`
	Description  string `json:"description"`
	Color        string `json:"color"         validate:"max=20"`
	DisplayOrder int    `json:"display_order"`
}

type categoryRequest struct {
	Name        string `json:"name"        validate:"required,max=50"`
	Description string `json:"description"`
	Color       string `json:"color"       validate:"max=20"`
}

// StatusHandler handles HTTP requests for the task-status taxonomy.
// Mutations are registered behind the ADMIN role gate in the router.
type StatusHandler struct {
	service ports.StatusService
}

func NewStatusHandler(service ports.StatusService) *StatusHandler {
	return &StatusHandler{service: service}
}

func (h *StatusHandler) GetAll(c echo.Context) error {
	statuses, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statuses)
}

func (h *StatusHandler) GetByID(c echo.Context) error {
	status, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

func (h *StatusHandler) GetByName(c echo.Context) error {
	status, err := h.service.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

func (h *StatusHandler) Create(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	status, err := h.service.Create(c.Request().Context(), ports.StatusInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, status)
}

func (h *StatusHandler) Update(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	status, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.StatusInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

func (h *StatusHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// PriorityHandler handles HTTP requests for the task-priority taxonomy.
type PriorityHandler struct {
	service ports.PriorityService
}

func NewPriorityHandler(service ports.PriorityService) *PriorityHandler {
	return &PriorityHandler{service: service}
}

func (h *PriorityHandler) GetAll(c echo.Context) error {
	priorities, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, priorities)
}

func (h *PriorityHandler) GetByID(c echo.Context) error {
	priority, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, priority)
}

func (h *PriorityHandler) GetByName(c echo.Context) error {
	priority, err := h.service.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, priority)
}

func (h *PriorityHandler) GetByValue(c echo.Context) error {
	value, err := strconv.Atoi(c.Param("value"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "value must be an integer")
	}
	priority, err := h.service.GetByValue(c.Request().Context(), value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, priority)
}

func (h *PriorityHandler) Create(c echo.Context) error {
	var req priorityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	priority, err := h.service.Create(c.Request().Context(), ports.PriorityInput{
		Name:         req.Name,
		Value:        req.Value,
		Description:  req.Description,
		Color:        req.Color,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, priority)
}

func (h *PriorityHandler) Update(c echo.Context) error {
	var req priorityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	priority, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.PriorityInput{
		Name:         req.Name,
		Value:        req.Value,
		Description:  req.Description,
		Color:        req.Color,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, priority)
}

func (h *PriorityHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CategoryHandler handles HTTP requests for the task-category taxonomy.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) GetAll(c echo.Context) error {
	categories, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetByID(c echo.Context) error {
	category, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) GetByName(c echo.Context) error {
	category, err := h.service.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	category, err := h.service.Create(c.Request().Context(), ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	category, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
