package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Pacdac/task-management-app/internal/core/domain"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrTaskNotFound, http.StatusNotFound},
		{domain.ErrStatusNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrPriorityExists, http.StatusConflict},
		{domain.ErrForbidden, http.StatusForbidden},
	}

	for _, tc := range cases {
		rec, body := render(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if msg, ok := body["error"].(string); !ok || msg == "" {
			t.Fatalf("%v: missing error message", tc.err)
		}
	}
}

func TestErrorHandler_InvalidCredentials(t *testing.T) {
	rec, body := render(t, domain.ErrInvalidCredentials)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["error_code"] != "AUTH_FAILED" {
		t.Fatalf("expected AUTH_FAILED code, got %v", body["error_code"])
	}
	if msg, ok := body["suggestion"].(string); !ok || msg == "" {
		t.Fatalf("expected a remediation suggestion")
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	ve := domain.NewValidationError()
	ve.Add("username", "username is required")
	ve.Add("email", "email must be a valid email")

	rec, body := render(t, ve)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	fields, ok := body["fields"].(map[string]any)
	if !ok {
		t.Fatalf("expected fields map, got %v", body)
	}
	if fields["username"] != "username is required" || fields["email"] != "email must be a valid email" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "invalid payload" {
		t.Fatalf("unexpected message: %v", body["error"])
	}
}

func TestErrorHandler_Unexpected(t *testing.T) {
	rec, body := render(t, errors.New("mongo topology closed"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal details leaked: %v", body["error"])
	}
}
