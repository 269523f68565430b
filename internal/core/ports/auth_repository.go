package ports

import (
	"context"

	"github.com/socialhub/socialhub-api/internal/core/domain"
)

// UserRepository defines user persistence. Create must surface the store's
// unique-email violation as domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// SessionRepository defines session persistence. Create must surface a
// unique-token violation as domain.ErrDuplicateToken so the caller can retry
// with a fresh token.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
}
