package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pacdac/task-management-app/internal/core/domain"
	"github.com/Pacdac/task-management-app/internal/core/ports"
	"github.com/Pacdac/task-management-app/internal/core/token"
)

const defaultPasswordMinLength = 12

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// AuthService implements registration, login and token-subject resolution.
// Unknown-principal and bad-password failures are deliberately collapsed
// into domain.ErrInvalidCredentials before they leave this package.
type AuthService struct {
	users       ports.UserRepository
	codec       *token.Codec
	passwordMin int
	logger      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, passwordMin int, logger zerolog.Logger) *AuthService {
	if passwordMin <= 0 {
		passwordMin = defaultPasswordMinLength
	}
	return &AuthService{users: users, codec: codec, passwordMin: passwordMin, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if err := s.validateRegistration(input); err != nil {
		return nil, err
	}

	if taken, err := s.users.ExistsByUsername(ctx, input.Username); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if taken {
		return nil, domain.ErrUserExists
	}
	if taken, err := s.users.ExistsByEmail(ctx, input.Email); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if taken {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index is the final authority: a concurrent registration that
	// slipped past the existence checks still comes back as ErrUserExists.
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")

	return s.issueFor(created)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")

	return s.issueFor(user)
}

func (s *AuthService) CurrentUser(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *AuthService) issueFor(user *domain.User) (*ports.AuthResult, error) {
	authorities := []string{user.Role.Authority()}
	signed, err := s.codec.Issue(user.Username, authorities)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &ports.AuthResult{
		Token:       signed,
		Username:    user.Username,
		Authorities: authorities,
	}, nil
}

func (s *AuthService) validateRegistration(input ports.RegisterInput) error {
	ve := domain.NewValidationError()

	switch {
	case input.Username == "":
		ve.Add("username", "username cannot be empty")
	case len(input.Username) < 3:
		ve.Add("username", "username must be at least 3 characters long")
	case len(input.Username) > 50:
		ve.Add("username", "username must be at most 50 characters long")
	case !usernamePattern.MatchString(input.Username):
		ve.Add("username", "username can only contain letters, numbers, and underscores")
	}

	switch {
	case input.Password == "":
		ve.Add("password", "password cannot be empty")
	case len(input.Password) < s.passwordMin:
		ve.Add("password", fmt.Sprintf("password must be at least %d characters long", s.passwordMin))
	}

	switch {
	case input.Email == "":
		ve.Add("email", "email cannot be empty")
	case len(input.Email) > 100:
		ve.Add("email", "email must be at most 100 characters long")
	}

	if ve.Empty() {
		return nil
	}
	return ve
}
