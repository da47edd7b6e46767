package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Pacdac/task-management-app/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails when it is absent: a non-empty username proves the middleware
// ran for this request.
func ctxIdentity(c echo.Context) (username string, authorities []string, err error) {
	username, _ = c.Get(middleware.ContextUsername).(string)
	if username == "" {
		return "", nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	authorities, _ = c.Get(middleware.ContextAuthorities).([]string)
	return username, authorities, nil
}
