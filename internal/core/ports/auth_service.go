package ports

import (
	"context"

	"github.com/socialhub/socialhub-api/internal/core/domain"
)

// AuthService covers the session-based authentication lifecycle: account
// creation, credential verification, and bearer-token resolution.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Resolve(ctx context.Context, token string) (*domain.User, error)
}
