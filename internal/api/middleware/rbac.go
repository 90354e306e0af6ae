package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayora/booking-platform/internal/core/domain"
)

// RequireRole restricts a route to the given roles. It relies on Auth having
// populated the role context key; an absent role is treated as forbidden.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r.Wire()] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRoleKey).(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
