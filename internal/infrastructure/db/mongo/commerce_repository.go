package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/socialhub/socialhub-api/internal/core/domain"
)

// SocialAccountRepository persists linked social accounts.
type SocialAccountRepository struct {
	coll *mongo.Collection
}

func NewSocialAccountRepository(db *mongo.Database) *SocialAccountRepository {
	return &SocialAccountRepository{coll: db.Collection(collectionAccounts)}
}

type mongoAccount struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Platform    string             `bson:"platform"`
	Username    string             `bson:"username"`
	Followers   int                `bson:"followers"`
	AccessToken string             `bson:"access_token,omitempty"`
	LastSync    *time.Time         `bson:"last_sync,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (r *SocialAccountRepository) Insert(ctx context.Context, account *domain.SocialAccount) (*domain.SocialAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAccount{
		UserID:      account.UserID,
		Platform:    account.Platform,
		Username:    account.Username,
		Followers:   account.Followers,
		AccessToken: account.AccessToken,
		LastSync:    account.LastSync,
		Status:      account.Status,
		CreatedAt:   account.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert social account: %w", err)
	}

	created := *account
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *SocialAccountRepository) ListByUser(ctx context.Context, userID string) ([]domain.SocialAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list social accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAccount
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list social accounts: %w", err)
	}

	accounts := make([]domain.SocialAccount, 0, len(docs))
	for _, d := range docs {
		accounts = append(accounts, domain.SocialAccount{
			ID:          d.ID.Hex(),
			UserID:      d.UserID,
			Platform:    d.Platform,
			Username:    d.Username,
			Followers:   d.Followers,
			AccessToken: d.AccessToken,
			LastSync:    d.LastSync,
			Status:      d.Status,
			CreatedAt:   d.CreatedAt,
		})
	}
	return accounts, nil
}

// ProductRepository persists storefront products. Every lookup carries the
// owner filter, so another user's product reads as absent.
type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(collectionProducts)}
}

type mongoProduct struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	ProductType string             `bson:"product_type"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d mongoProduct) toDomain() domain.Product {
	return domain.Product{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		ProductType: domain.ProductType(d.ProductType),
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *ProductRepository) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProduct{
		UserID:      product.UserID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
		ProductType: string(product.ProductType),
		Status:      product.Status,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *product
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProductRepository) ListByUser(ctx context.Context, userID string) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoProduct
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toDomain())
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id, userID string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d mongoProduct
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	product := d.toDomain()
	return &product, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	oid, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":        product.Title,
		"description":  product.Description,
		"price":        product.Price,
		"product_type": string(product.ProductType),
		"status":       product.Status,
		"updated_at":   product.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid, "user_id": product.UserID}, update)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Deleting an unknown product is a no-op, matching delete semantics
		// of the storefront: the caller only learns ok.
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID}); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// OrderRepository persists storefront orders.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(collectionOrders)}
}

type mongoOrder struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	ProductID  string             `bson:"product_id"`
	BuyerEmail string             `bson:"buyer_email"`
	Amount     float64            `bson:"amount"`
	Currency   string             `bson:"currency"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (r *OrderRepository) Insert(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoOrder{
		UserID:     order.UserID,
		ProductID:  order.ProductID,
		BuyerEmail: order.BuyerEmail,
		Amount:     order.Amount,
		Currency:   order.Currency,
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	created := *order
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// AIJobRepository persists AI-edit jobs.
type AIJobRepository struct {
	coll *mongo.Collection
}

func NewAIJobRepository(db *mongo.Database) *AIJobRepository {
	return &AIJobRepository{coll: db.Collection(collectionAIJobs)}
}

type mongoAIJob struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	SourceURL  string             `bson:"source_url,omitempty"`
	Operations []string           `bson:"operations"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (r *AIJobRepository) Insert(ctx context.Context, job *domain.AIJob) (*domain.AIJob, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAIJob{
		UserID:     job.UserID,
		SourceURL:  job.SourceURL,
		Operations: job.Operations,
		Status:     job.Status,
		CreatedAt:  job.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert ai job: %w", err)
	}

	created := *job
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}
