package ports

import (
	"context"

	"github.com/storelane/ecommerce-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// The store exclusively owns durable User records; callers hand it
// normalized usernames (domain.NormalizeUsername) for lookups.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByUsername matches against the normalized username. Returns
	// domain.ErrUserNotFound when no account matches.
	FindByUsername(ctx context.Context, normalized string) (*domain.User, error)
	// List returns all users ordered ascending by id.
	List(ctx context.Context) ([]*domain.User, error)
	// Insert persists a new user and returns the committed record with
	// its store-assigned id. A concurrent duplicate of the normalized
	// username fails atomically with domain.ErrUserExists.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
}
