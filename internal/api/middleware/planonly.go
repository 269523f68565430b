package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/socialhub/socialhub-api/internal/core/domain"
)

// PlanOnly gates a route to the given subscription tiers. It must run after
// Auth, which injects the user it inspects.
func PlanOnly(allowedPlans ...domain.Plan) echo.MiddlewareFunc {
	allowed := make(map[domain.Plan]struct{}, len(allowedPlans))
	for _, p := range allowedPlans {
		allowed[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := UserFromContext(c)
			if user == nil {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[user.Plan]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
