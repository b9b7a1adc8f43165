package ports

import (
	"context"

	"github.com/storelane/ecommerce-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	SKU         string
	Stock       int
	CategoryID  int64
}

// UpdateProductInput carries the full replacement state for a product.
type UpdateProductInput struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	SKU         string
	Stock       int
	CategoryID  int64
}

// BuyProductInput decrements stock for a purchase.
type BuyProductInput struct {
	SKU      string
	Quantity int
}

// ListProductsInput carries all parameters for the list endpoint.
type ListProductsInput struct {
	CategoryID int64
	Search     string
	Page       int
	Limit      int
}

// ListProductsResult is returned by ListProducts.
type ListProductsResult struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService defines use-case operations for products.
type ProductService interface {
	CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context, in ListProductsInput) (*ListProductsResult, error)
	UpdateProduct(ctx context.Context, in UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	// BuyProduct atomically decrements stock and returns the product as
	// it stands after the purchase.
	BuyProduct(ctx context.Context, in BuyProductInput) (*domain.Product, error)
}
