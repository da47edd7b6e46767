package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Pacdac/task-management-app/internal/core/ports"
)

// UserHandler handles HTTP requests for user administration.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username  string `json:"username"   validate:"required,min=3,max=50"`
	Email     string `json:"email"      validate:"required,email,max=100"`
	Password  string `json:"password"   validate:"required"`
	FirstName string `json:"first_name" validate:"max=50"`
	LastName  string `json:"last_name"  validate:"max=50"`
	Role      string `json:"role"`
}

type updateUserRequest struct {
	Username  string `json:"username"   validate:"required,min=3,max=50"`
	Email     string `json:"email"      validate:"required,email,max=100"`
	Password  string `json:"password"`
	FirstName string `json:"first_name" validate:"max=50"`
	LastName  string `json:"last_name"  validate:"max=50"`
	Role      string `json:"role"`
}

// updateProfileRequest is the self-service variant of updateUserRequest.
// It carries no role field: a caller can never change their own role.
type updateProfileRequest struct {
	Username  string `json:"username"   validate:"required,min=3,max=50"`
	Email     string `json:"email"      validate:"required,email,max=100"`
	Password  string `json:"password"`
	FirstName string `json:"first_name" validate:"max=50"`
	LastName  string `json:"last_name"  validate:"max=50"`
}

// GetAll lists all users.
//
// @Summary  List users
// @Tags     users
// @Produce  json
// @Success  200  {array}  domain.User
// @Router   /api/users [get]
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetByID returns a single user.
//
// @Summary  Get user by id
// @Tags     users
// @Produce  json
// @Param    id   path      string  true  "User ID"
// @Success  200  {object}  domain.User
// @Failure  404  {object}  map[string]string
// @Router   /api/users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// GetByUsername returns a single user looked up by username.
//
// @Summary  Get user by username
// @Tags     users
// @Produce  json
// @Param    username  path      string  true  "Username"
// @Success  200       {object}  domain.User
// @Failure  404       {object}  map[string]string
// @Router   /api/users/username/{username} [get]
func (h *UserHandler) GetByUsername(c echo.Context) error {
	user, err := h.service.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create creates a user directly, optionally with an explicit role.
//
// @Summary  Create user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body  body      createUserRequest  true  "User data"
// @Success  201   {object}  domain.User
// @Failure  400   {object}  map[string]string
// @Failure  409   {object}  map[string]string
// @Router   /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Update replaces a user's profile. Password and role are applied only when
// supplied.
//
// @Summary  Update user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    id    path      string             true  "User ID"
// @Param    body  body      updateUserRequest  true  "User data"
// @Success  200   {object}  domain.User
// @Failure  404   {object}  map[string]string
// @Failure  409   {object}  map[string]string
// @Router   /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Me returns the caller's own profile, resolved from the token subject.
//
// @Summary  Get own profile
// @Tags     users
// @Produce  json
// @Success  200  {object}  domain.User
// @Failure  401  {object}  map[string]string
// @Router   /api/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	user, err := h.service.GetByUsername(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe updates the caller's own profile. The record is resolved from the
// token subject, so no id is needed and no other account can be touched.
//
// @Summary  Update own profile
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body  body      updateProfileRequest  true  "Profile data"
// @Success  200   {object}  domain.User
// @Failure  400   {object}  map[string]string
// @Failure  401   {object}  map[string]string
// @Failure  409   {object}  map[string]string
// @Router   /api/users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	current, err := h.service.GetByUsername(c.Request().Context(), username)
	if err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), current.ID, ports.UpdateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes a user permanently.
//
// @Summary  Delete user
// @Tags     users
// @Param    id  path  string  true  "User ID"
// @Success  204
// @Failure  404  {object}  map[string]string
// @Router   /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
