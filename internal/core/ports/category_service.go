package ports

import (
	"context"

	"github.com/storelane/ecommerce-api/internal/core/domain"
)

// CreateCategoryInput carries the data for a new category.
type CreateCategoryInput struct {
	Name string
}

// UpdateCategoryInput renames an existing category.
type UpdateCategoryInput struct {
	ID   int64
	Name string
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	CreateCategory(ctx context.Context, in CreateCategoryInput) (*domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	UpdateCategory(ctx context.Context, in UpdateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
