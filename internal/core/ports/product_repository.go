package ports

import (
	"context"

	"github.com/storelane/ecommerce-api/internal/core/domain"
)

// ListProductsFilter carries query parameters for listing products.
type ListProductsFilter struct {
	CategoryID int64  // optional: 0 = all categories
	Search     string // optional: partial, case-insensitive match on name
	Page       int    // 1-based
	Limit      int    // max rows per page (capped at 100 by service)
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// Insert persists a new product, failing with
	// domain.ErrProductExists when the SKU is taken.
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	FindBySKU(ctx context.Context, sku string) (*domain.Product, error)
	// List returns a page of products matching filter and the total count.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
	// DecrementStock atomically subtracts quantity from the product's
	// stock, failing with domain.ErrInsufficientStock when the remaining
	// stock would go negative.
	DecrementStock(ctx context.Context, sku string, quantity int) (*domain.Product, error)
}
