package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/socialhub/socialhub-api/internal/core/domain"
	"github.com/socialhub/socialhub-api/internal/core/ports"
)

const orderCurrency = "USD"

// CommerceService manages storefront products, orders, and AI-edit jobs.
// Payments and AI execution are simulated by writing the final status record.
type CommerceService struct {
	products ports.ProductRepository
	orders   ports.OrderRepository
	jobs     ports.AIJobRepository
	logger   zerolog.Logger
}

func NewCommerceService(products ports.ProductRepository, orders ports.OrderRepository, jobs ports.AIJobRepository, logger zerolog.Logger) *CommerceService {
	return &CommerceService{products: products, orders: orders, jobs: jobs, logger: logger}
}

func (s *CommerceService) ListProducts(ctx context.Context, user *domain.User) ([]domain.Product, error) {
	return s.products.ListByUser(ctx, user.ID)
}

func (s *CommerceService) CreateProduct(ctx context.Context, user *domain.User, in ports.ProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		UserID:      user.ID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		ProductType: in.ProductType,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if product.Status == "" {
		product.Status = "active"
	}

	created, err := s.products.Insert(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to create product")
		return nil, err
	}
	return created, nil
}

// UpdateProduct replaces the mutable fields of a product owned by the caller.
func (s *CommerceService) UpdateProduct(ctx context.Context, user *domain.User, productID string, in ports.ProductInput) error {
	product, err := s.products.FindByID(ctx, productID, user.ID)
	if err != nil {
		return err
	}

	product.Title = in.Title
	product.Description = in.Description
	product.Price = in.Price
	product.ProductType = in.ProductType
	product.Status = in.Status
	product.UpdatedAt = time.Now().UTC()

	return s.products.Update(ctx, product)
}

func (s *CommerceService) DeleteProduct(ctx context.Context, user *domain.User, productID string) error {
	return s.products.Delete(ctx, productID, user.ID)
}

// CreateOrder records a sale of one of the caller's products. The amount is
// the product's price at purchase time and the order is written already paid.
func (s *CommerceService) CreateOrder(ctx context.Context, user *domain.User, in ports.CreateOrderInput) (*domain.Order, error) {
	product, err := s.products.FindByID(ctx, in.ProductID, user.ID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:     user.ID,
		ProductID:  product.ID,
		BuyerEmail: in.BuyerEmail,
		Amount:     product.Price,
		Currency:   orderCurrency,
		Status:     "paid",
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.orders.Insert(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("product_id", product.ID).
		Msg("order created")
	return created, nil
}

// CreateAIJob queues a simulated AI-edit job. Plan gating happens at the
// transport layer; the job is written directly in processing state.
func (s *CommerceService) CreateAIJob(ctx context.Context, user *domain.User, in ports.AIEditInput) (*domain.AIJob, error) {
	job := &domain.AIJob{
		UserID:     user.ID,
		SourceURL:  in.SourceURL,
		Operations: in.Operations,
		Status:     "processing",
		CreatedAt:  time.Now().UTC(),
	}
	if job.Operations == nil {
		job.Operations = []string{}
	}

	created, err := s.jobs.Insert(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to create ai job")
		return nil, err
	}
	return created, nil
}
