package ports

import (
	"context"

	"github.com/storelane/ecommerce-api/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// Insert persists a new category, failing with
	// domain.ErrCategoryExists when the name is taken.
	Insert(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	// List returns all categories ordered ascending by id.
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int64) error
}
