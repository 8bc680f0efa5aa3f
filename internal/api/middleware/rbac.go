package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inventorypro/inventory-system/internal/core/domain"
)

// RequireSection guards a route group behind the access gate: the request
// proceeds only when the authenticated role may navigate to the section.
// Denial is a plain 403 with no further detail.
func RequireSection(section domain.Section) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.CanAccess(role, section) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
