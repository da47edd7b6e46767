package domain

import (
	"errors"
	"time"
)

// Role is the closed set of authority tags a user can hold.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a role string at the storage boundary. An empty string
// defaults to USER so registration and bare user creation agree.
func ParseRole(s string) (Role, error) {
	switch s {
	case "", string(RoleUser):
		return RoleUser, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	}
	return "", ErrUnknownRole
}

// Authority returns the role as a granted-authority claim, e.g. "ROLE_USER".
func (r Role) Authority() string {
	return "ROLE_" + string(r)
}

// User models a registered principal. PasswordHash never crosses the JSON
// boundary and is only ever set through bcrypt in the service layer.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
