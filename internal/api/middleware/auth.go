package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Pacdac/task-management-app/internal/core/token"
)

// Context keys under which the Auth middleware stores the caller's identity.
const (
	ContextUsername    = "username"
	ContextAuthorities = "authorities"
)

// Auth enforces the authentication half of the access guard: it extracts the
// bearer token, decodes it, and injects the subject and authorities into the
// request context. Missing, malformed and expired tokens all fail closed
// with 401; the distinction stays in the server log only.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Decode(parts[1])
			if err != nil {
				if err == token.ErrExpired {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextUsername, claims.Subject)
			c.Set(ContextAuthorities, claims.Authorities)

			return next(c)
		}
	}
}
