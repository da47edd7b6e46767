package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pacdac/task-management-app/internal/core/domain"
	"github.com/Pacdac/task-management-app/internal/core/ports"
)

// UserService implements user administration. Password handling mirrors the
// auth flow: plaintext enters, only a bcrypt hash is ever stored.
type UserService struct {
	users       ports.UserRepository
	passwordMin int
	logger      zerolog.Logger
}

func NewUserService(users ports.UserRepository, passwordMin int, logger zerolog.Logger) *UserService {
	if passwordMin <= 0 {
		passwordMin = defaultPasswordMinLength
	}
	return &UserService{users: users, passwordMin: passwordMin, logger: logger}
}

func (s *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if err := s.validateCreate(input); err != nil {
		return nil, err
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		ve := domain.NewValidationError()
		ve.Add("role", "role must be USER or ADMIN")
		return nil, ve
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
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != existing.Username {
		if taken, err := s.users.ExistsByUsername(ctx, input.Username); err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		} else if taken {
			return nil, domain.ErrUserExists
		}
	}
	if input.Email != existing.Email {
		if taken, err := s.users.ExistsByEmail(ctx, input.Email); err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		} else if taken {
			return nil, domain.ErrUserExists
		}
	}

	existing.Username = input.Username
	existing.Email = input.Email
	existing.FirstName = input.FirstName
	existing.LastName = input.LastName

	if input.Role != "" {
		role, err := domain.ParseRole(input.Role)
		if err != nil {
			ve := domain.NewValidationError()
			ve.Add("role", "role must be USER or ADMIN")
			return nil, ve
		}
		existing.Role = role
	}

	if input.Password != "" {
		if len(input.Password) < s.passwordMin {
			ve := domain.NewValidationError()
			ve.Add("password", fmt.Sprintf("password must be at least %d characters long", s.passwordMin))
			return nil, ve
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		existing.PasswordHash = string(hash)
	}

	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) validateCreate(input ports.CreateUserInput) error {
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
	case input.Email == "":
		ve.Add("email", "email cannot be empty")
	case len(input.Email) > 100:
		ve.Add("email", "email must be at most 100 characters long")
	}

	switch {
	case input.Password == "":
		ve.Add("password", "password cannot be empty")
	case len(input.Password) < s.passwordMin:
		ve.Add("password", fmt.Sprintf("password must be at least %d characters long", s.passwordMin))
	}

	if ve.Empty() {
		return nil
	}
	return ve
}
