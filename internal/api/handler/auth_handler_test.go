package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Pacdac/task-management-app/internal/core/domain"
	"github.com/Pacdac/task-management-app/internal/core/ports"
)

type stubAuthService struct {
	registerFn    func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error)
	loginFn       func(ctx context.Context, username, password string) (*ports.AuthResult, error)
	currentUserFn func(ctx context.Context, username string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, username string) (*domain.User, error) {
	return s.currentUserFn(ctx, username)
}

func newAuthContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
			if input.Username != "alice" || input.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.AuthResult{Token: "signed", Username: "alice", Authorities: []string{"ROLE_USER"}}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(e, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"longenoughpassword"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed" || resp["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	authorities, _ := resp["authorities"].([]any)
	if len(authorities) != 1 || authorities[0] != "ROLE_USER" {
		t.Fatalf("unexpected authorities: %+v", resp["authorities"])
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newAuthContext(e, http.MethodPost, "/api/auth/register",
		`{"username":"ab","email":"not-an-email","password":""}`)

	err := handler.Register(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"username", "email", "password"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Fatalf("expected failure on %q, got %v", field, ve.Fields)
		}
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newAuthContext(e, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"longenoughpassword"}`)

	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (*ports.AuthResult, error) {
			if username != "alice" || password != "longenoughpassword" {
				t.Fatalf("unexpected credentials: %s", username)
			}
			return &ports.AuthResult{Token: "signed", Username: "alice", Authorities: []string{"ROLE_USER"}}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(e, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"longenoughpassword"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

// A login request with missing fields must fail exactly like bad credentials,
// with no field-level detail.
func TestAuthHandler_Login_MissingFieldsCollapse(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.AuthResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newAuthContext(e, http.MethodPost, "/api/auth/login", `{"username":"alice"}`)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newAuthContext(e, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"wrongpassword"}`)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		currentUserFn: func(_ context.Context, username string) (*domain.User, error) {
			if username != "alice" {
				t.Fatalf("unexpected username: %s", username)
			}
			return &domain.User{Username: "alice", Email: "alice@example.com", Role: domain.RoleUser}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(e, http.MethodGet, "/api/auth/me", "")
	c.Set("username", "alice")
	c.Set("authorities", []string{"ROLE_USER"})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password material leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_MissingClaims(t *testing.T) {
	e := echo.New()
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthContext(e, http.MethodGet, "/api/auth/me", "")

	err := handler.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
