package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/socialhub/socialhub-api/internal/core/domain"
)

// userContextKey is where Auth stores the resolved *domain.User on the echo
// context. Handlers read it back through handler.CurrentUser.
const userContextKey = "auth_user"

// SessionResolver maps a bearer token to its authenticated user.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// Auth parses the Authorization header, resolves the session, and injects the
// authenticated user into the request context. It is the single enforcement
// point for "who is making this request"; handlers never parse tokens.
func Auth(resolver SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request().Header.Get("Authorization"))
			if err != nil {
				return err
			}

			user, err := resolver.Resolve(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// bearerToken extracts the credential from an "Authorization: Bearer <token>"
// value. A missing header and a malformed one are distinct errors internally;
// both render as 401 to the client.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", domain.ErrUnauthenticated
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", domain.ErrMalformedCredential
	}

	return parts[1], nil
}

// UserFromContext returns the user injected by Auth, or nil when the
// middleware did not run.
func UserFromContext(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
