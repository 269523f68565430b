package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// SocialAccount is a linked publishing identity on an external platform.
// OAuth is simulated; linking only stores the platform and username.
type SocialAccount struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Platform    string     `json:"platform"`
	Username    string     `json:"username"`
	Followers   int        `json:"followers"`
	AccessToken string     `json:"access_token,omitempty"`
	LastSync    *time.Time `json:"last_sync,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ProductType classifies a storefront listing.
type ProductType string

const (
	ProductDigital  ProductType = "digital"
	ProductPhysical ProductType = "physical"
	ProductService  ProductType = "service"
)

// Product is a storefront listing owned by a user.
type Product struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Price       float64     `json:"price"`
	ProductType ProductType `json:"product_type"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Order records a storefront sale. Payment processing is simulated; orders
// are written already paid with the product's price at purchase time.
type Order struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ProductID  string    `json:"product_id"`
	BuyerEmail string    `json:"buyer_email"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// AIJob is a simulated AI-edit job, available to ultra_pro subscribers only.
type AIJob struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	SourceURL  string    `json:"source_url,omitempty"`
	Operations []string  `json:"operations"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
