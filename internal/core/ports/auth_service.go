package ports

import (
	"context"

	"github.com/Pacdac/task-management-app/internal/core/domain"
)

// RegisterInput is the raw registration payload after transport binding.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthResult is returned by both registration and login: the issued token
// plus the identity summary it names.
type AuthResult struct {
	Token       string
	Username    string
	Authorities []string
}

// AuthService turns credentials into issued tokens. Login failures, whether
// the principal is unknown or the password wrong, surface as the single
// domain.ErrInvalidCredentials so callers cannot enumerate usernames.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	// CurrentUser resolves a token subject back to the stored identity.
	CurrentUser(ctx context.Context, username string) (*domain.User, error)
}
