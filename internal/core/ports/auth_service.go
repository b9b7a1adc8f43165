package ports

import (
	"context"

	"github.com/storelane/ecommerce-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
// It is transient and never persisted as-is.
type RegisterInput struct {
	Username string
	Name     string
	Password string
	Role     string
}

// LoginInput carries login credentials.
type LoginInput struct {
	Username string
	Password string
}

// UserView is the sanitized account view echoed on a successful login.
// It deliberately carries no password-derived field.
type UserView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

// LoginResult is the outcome of a login attempt. There is no success
// flag: callers check whether Token is non-empty. Message is always a
// human-readable status.
type LoginResult struct {
	Token   string    `json:"token"`
	User    *UserView `json:"user"`
	Message string    `json:"message"`
}

// AuthService orchestrates registration, credential verification, and
// token issuance.
type AuthService interface {
	// Register hashes the password and inserts the account. Uniqueness
	// is enforced by the store's insert contract; callers wanting a
	// pre-check use IsUniqueUser.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login runs the credential checks and, on success, issues a signed
	// access token. User-input failures come back as a LoginResult with
	// an empty token; only store faults and a missing signing secret
	// are returned as errors.
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	// IsUniqueUser reports whether no existing account normalizes to
	// the same username.
	IsUniqueUser(ctx context.Context, username string) (bool, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUsers(ctx context.Context) ([]*domain.User, error)
}
