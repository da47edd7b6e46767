package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pacdac/task-management-app/internal/core/domain"
	"github.com/Pacdac/task-management-app/internal/core/ports"
	"github.com/Pacdac/task-management-app/internal/core/token"
)

func newAuthService(repo ports.UserRepository) *AuthService {
	codec := token.NewCodec("test-secret", time.Hour)
	return NewAuthService(repo, codec, 12, zerolog.Nop())
}

func validRegistration() ports.RegisterInput {
	return ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "longenoughpassword",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	result, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.Username != "alice" {
		t.Fatalf("unexpected username: %s", result.Username)
	}
	if len(result.Authorities) != 1 || result.Authorities[0] != "ROLE_USER" {
		t.Fatalf("unexpected authorities: %v", result.Authorities)
	}

	stored, err := repo.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if stored.PasswordHash == "longenoughpassword" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("longenoughpassword")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if stored.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", stored.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input ports.RegisterInput
		field string
	}{
		{"empty username", ports.RegisterInput{Email: "a@b.com", Password: "longenoughpassword"}, "username"},
		{"short username", ports.RegisterInput{Username: "ab", Email: "a@b.com", Password: "longenoughpassword"}, "username"},
		{"bad username chars", ports.RegisterInput{Username: "bad name!", Email: "a@b.com", Password: "longenoughpassword"}, "username"},
		{"short password", ports.RegisterInput{Username: "bob", Email: "a@b.com", Password: "short"}, "password"},
		{"empty email", ports.RegisterInput{Username: "bob", Password: "longenoughpassword"}, "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newAuthService(newStubUserRepo())
			_, err := svc.Register(context.Background(), tc.input)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := ve.Fields[tc.field]; !ok {
				t.Fatalf("expected failure on %q, got %v", tc.field, ve.Fields)
			}
		})
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), validRegistration()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	input := validRegistration()
	input.Username = "alice2"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
}

// raceUserRepo simulates a concurrent registration: both existence checks
// pass, then the unique index rejects the insert.
type raceUserRepo struct {
	*stubUserRepo
}

func (r *raceUserRepo) ExistsByUsername(context.Context, string) (bool, error) { return false, nil }
func (r *raceUserRepo) ExistsByEmail(context.Context, string) (bool, error)    { return false, nil }

func (r *raceUserRepo) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, domain.ErrUserExists
}

func TestAuthService_Register_StorageConflict(t *testing.T) {
	svc := newAuthService(&raceUserRepo{newStubUserRepo()})

	if _, err := svc.Register(context.Background(), validRegistration()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists from the storage layer, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "alice", "longenoughpassword")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}

	codec := token.NewCodec("test-secret", time.Hour)
	claims, err := codec.Decode(result.Token)
	if err != nil {
		t.Fatalf("issued token does not decode: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if len(claims.Authorities) != 1 || claims.Authorities[0] != "ROLE_USER" {
		t.Fatalf("unexpected authorities: %v", claims.Authorities)
	}
}

// Wrong password and unknown username must be indistinguishable to callers.
func TestAuthService_Login_FailuresCollapse(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "alice", "wrongpassword")
	_, unknownUser := svc.Login(context.Background(), "nobody", "longenoughpassword")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", unknownUser)
	}
	if wrongPass != unknownUser {
		t.Fatalf("failure modes must collapse to the same error")
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.CurrentUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if user.Username != "alice" || user.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.CurrentUser(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
