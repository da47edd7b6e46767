package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/Pacdac/task-management-app/internal/api/metrics"
	"github.com/Pacdac/task-management-app/internal/core/domain"
)

// RequireRole enforces the authorization half of the access guard: the
// caller's authorities (set by Auth) must contain at least one of the given
// roles. Denials surface as domain.ErrForbidden, which the error handler
// renders as 403, never 401.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r.Authority()] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authorities, _ := c.Get(ContextAuthorities).([]string)
			for _, a := range authorities {
				if _, ok := allowed[a]; ok {
					return next(c)
				}
			}
			metrics.AccessDeniedTotal.WithLabelValues(c.Path()).Inc()
			return domain.ErrForbidden
		}
	}
}
