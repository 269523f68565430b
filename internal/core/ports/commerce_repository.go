package ports

import (
	"context"

	"github.com/socialhub/socialhub-api/internal/core/domain"
)

// SocialAccountRepository persists linked social accounts.
type SocialAccountRepository interface {
	Insert(ctx context.Context, account *domain.SocialAccount) (*domain.SocialAccount, error)
	ListByUser(ctx context.Context, userID string) ([]domain.SocialAccount, error)
}

// ProductRepository persists storefront products. All lookups are scoped to
// the owning user; a product owned by someone else reads as absent.
type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Product, error)
	FindByID(ctx context.Context, id, userID string) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id, userID string) error
}

// OrderRepository persists storefront orders.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

// AIJobRepository persists AI-edit jobs.
type AIJobRepository interface {
	Insert(ctx context.Context, job *domain.AIJob) (*domain.AIJob, error)
}
