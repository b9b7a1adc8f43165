package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/storelane/ecommerce-api/internal/api/metrics"
	"github.com/storelane/ecommerce-api/internal/core/domain"
	"github.com/storelane/ecommerce-api/internal/core/ports"
)

// Login status messages surfaced to callers verbatim.
const (
	MsgUsernameRequired = "Username is required"
	MsgUsernameNotFound = "Username not found"
	MsgBadCredentials   = "Credentials are incorrect"
	MsgLoginSuccessful  = "Login successful"
)

// AuthService implements registration, login, and user lookups.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, issuer: issuer, log: log}
}

var _ ports.AuthService = (*AuthService)(nil)

// Register hashes the password and inserts the account. A blank username
// is defaulted to the sentinel rather than rejected; uniqueness is
// enforced by the store's insert contract.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(in.Username)
	if username == "" {
		username = domain.NoUsername
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Name:         in.Name,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login runs the credential checks in order, short-circuiting on the
// first failure. Cheap checks run before the bcrypt comparison, and the
// verification failure message stays generic.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	if strings.TrimSpace(in.Username) == "" {
		metrics.LoginsTotal.WithLabelValues("empty_username").Inc()
		return &ports.LoginResult{Message: MsgUsernameRequired}, nil
	}

	user, err := s.repo.FindByUsername(ctx, domain.NormalizeUsername(in.Username))
	if errors.Is(err, domain.ErrUserNotFound) {
		metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		return &ports.LoginResult{Message: MsgUsernameNotFound}, nil
	}
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(in.Password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return &ports.LoginResult{Message: MsgBadCredentials}, nil
	}

	token, err := s.issuer.Issue(ports.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.ClaimRole(),
	})
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("login successful")

	return &ports.LoginResult{
		Token: token,
		User: &ports.UserView{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
			Role:     user.Role,
		},
		Message: MsgLoginSuccessful,
	}, nil
}

// IsUniqueUser reports whether no stored account normalizes to the same
// username.
func (s *AuthService) IsUniqueUser(ctx context.Context, username string) (bool, error) {
	_, err := s.repo.FindByUsername(ctx, domain.NormalizeUsername(username))
	if errors.Is(err, domain.ErrUserNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

func (s *AuthService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AuthService) GetUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
