package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/socialhub/socialhub-api/internal/api/middleware"
	"github.com/socialhub/socialhub-api/internal/core/domain"
)

// currentUser returns the user the Auth middleware resolved for this request.
// A nil user means the route was wired without the middleware; failing with
// Unauthenticated keeps the mistake visible without panicking.
func currentUser(c echo.Context) (*domain.User, error) {
	user := middleware.UserFromContext(c)
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
