package ports

import (
	"context"

	"github.com/socialhub/socialhub-api/internal/core/domain"
)

// LinkAccountInput carries the simulated OAuth linking payload.
type LinkAccountInput struct {
	Platform string
	Username string
}

// ProductInput is the create/update payload for a storefront product.
type ProductInput struct {
	Title       string
	Description string
	Price       float64
	ProductType domain.ProductType
	Status      string
}

// CreateOrderInput is the storefront purchase payload.
type CreateOrderInput struct {
	ProductID  string
	BuyerEmail string
}

// AIEditInput is the payload for a simulated AI-edit job.
type AIEditInput struct {
	SourceURL  string
	Operations []string
}

// AccountService manages linked social accounts.
type AccountService interface {
	Link(ctx context.Context, user *domain.User, in LinkAccountInput) (*domain.SocialAccount, error)
	List(ctx context.Context, user *domain.User) ([]domain.SocialAccount, error)
}

// CommerceService manages the storefront: products, orders, and AI-edit jobs.
type CommerceService interface {
	ListProducts(ctx context.Context, user *domain.User) ([]domain.Product, error)
	CreateProduct(ctx context.Context, user *domain.User, in ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, user *domain.User, productID string, in ProductInput) error
	DeleteProduct(ctx context.Context, user *domain.User, productID string) error
	CreateOrder(ctx context.Context, user *domain.User, in CreateOrderInput) (*domain.Order, error)
	CreateAIJob(ctx context.Context, user *domain.User, in AIEditInput) (*domain.AIJob, error)
}
