package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storelane/ecommerce-api/internal/core/domain"
	"github.com/storelane/ecommerce-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by normalized username
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	norm := domain.NormalizeUsername(user.Username)
	if _, exists := r.users[norm]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	committed := cloneUser(user)
	committed.ID = r.nextID
	r.users[norm] = cloneUser(committed)
	return committed, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, normalized string) (*domain.User, error) {
	if u, ok := r.users[normalized]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, cloneUser(u))
	}
	for i := 0; i < len(users); i++ {
		for j := i + 1; j < len(users); j++ {
			if users[j].ID < users[i].ID {
				users[i], users[j] = users[j], users[i]
			}
		}
	}
	return users, nil
}

func newTestAuthService(repo ports.UserRepository, secret string) *AuthService {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	issuer := NewJWTIssuer(secret, domain.TokenTTL)
	return NewAuthService(repo, hasher, issuer, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, "secret")

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Name:     "Alice Doe",
		Password: "pass123",
		Role:     "admin",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected store-assigned id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != "admin" {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_DefaultsUsernameSentinel(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, "secret")

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Anonymous",
		Password: "pass",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Username != domain.NoUsername {
		t.Fatalf("expected sentinel username, got %q", user.Username)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, "secret")

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pass"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	// Different case and padding, same identity.
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "  BOB ", Password: "pass2"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_EmptyUsername(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), "secret")

	result, err := svc.Login(context.Background(), ports.LoginInput{Username: "   ", Password: "pass"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token != "" {
		t.Fatalf("expected empty token")
	}
	if result.Message != MsgUsernameRequired {
		t.Fatalf("expected %q, got %q", MsgUsernameRequired, result.Message)
	}
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), "secret")

	result, err := svc.Login(context.Background(), ports.LoginInput{Username: "ghost", Password: "pass"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token != "" || result.Message != MsgUsernameNotFound {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, "secret")

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "dave", Password: "goodpass"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), ports.LoginInput{Username: "dave", Password: "badpass"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token != "" || result.Message != MsgBadCredentials {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestAuthService_Login_CaseInsensitiveUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, "secret")

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "alice", Name: "Alice", Password: "s3cret", Role: "admin"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), ports.LoginInput{Username: " Alice ", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty (message: %s)", result.Message)
	}
	if result.Message != MsgLoginSuccessful {
		t.Fatalf("expected %q, got %q", MsgLoginSuccessful, result.Message)
	}
	if result.User == nil || result.User.Username != "alice" || result.User.Role != "admin" {
		t.Fatalf("unexpected user view: %+v", result.User)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "alice" || claims["role"] != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_MissingSecretKey(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, "  ")

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "carol", Password: "pass"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), ports.LoginInput{Username: "carol", Password: "pass"})
	if !errors.Is(err, domain.ErrSecretKeyMissing) {
		t.Fatalf("expected ErrSecretKeyMissing, got %v (result: %+v)", err, result)
	}
	if result != nil {
		t.Fatalf("expected no result on configuration error")
	}
}

func TestAuthService_Login_RoleSentinelClaim(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, "secret")

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "eve", Password: "pass"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), ports.LoginInput{Username: "eve", Password: "pass"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["role"] != domain.NoRole {
		t.Fatalf("expected role sentinel %q, got %v", domain.NoRole, claims["role"])
	}
}

func TestAuthService_Login_UserViewOmitsHash(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, "secret")

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "frank", Password: "pass"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), ports.LoginInput{Username: "frank", Password: "pass"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	// ports.UserView has no password field at all; make sure the view is
	// populated from the stored record, not the request.
	if result.User == nil || result.User.ID == 0 || result.User.Username != "frank" {
		t.Fatalf("unexpected user view: %+v", result.User)
	}
}

func TestAuthService_IsUniqueUser_Normalization(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, "secret")

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "Grace", Password: "pass"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	for _, username := range []string{"grace", "GRACE", "  Grace  "} {
		unique, err := svc.IsUniqueUser(context.Background(), username)
		if err != nil {
			t.Fatalf("IsUniqueUser(%q) error: %v", username, err)
		}
		if unique {
			t.Fatalf("expected %q to collide with existing user", username)
		}
	}

	unique, err := svc.IsUniqueUser(context.Background(), "heidi")
	if err != nil {
		t.Fatalf("IsUniqueUser error: %v", err)
	}
	if !unique {
		t.Fatalf("expected unused username to be unique")
	}
}

func TestAuthService_GetUsers_AscendingByID(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, "secret")

	for _, username := range []string{"zoe", "adam", "mallory"} {
		if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: username, Password: "pass"}); err != nil {
			t.Fatalf("register %s failed: %v", username, err)
		}
	}

	users, err := svc.GetUsers(context.Background())
	if err != nil {
		t.Fatalf("GetUsers error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for i := 1; i < len(users); i++ {
		if users[i].ID <= users[i-1].ID {
			t.Fatalf("users not ascending by id: %v %v", users[i-1].ID, users[i].ID)
		}
	}
}

func TestAuthService_GetUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, "secret")

	created, err := svc.Register(context.Background(), ports.RegisterInput{Username: "ivan", Password: "pass"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	got, err := svc.GetUser(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if got.Username != "ivan" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := svc.GetUser(context.Background(), 9999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// Store faults during lookup must propagate, not masquerade as a failed
// login.
type faultyUserRepo struct {
	*stubUserRepo
	err error
}

func (r *faultyUserRepo) FindByUsername(context.Context, string) (*domain.User, error) {
	return nil, r.err
}

func TestAuthService_Login_StoreFaultPropagates(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &faultyUserRepo{stubUserRepo: newStubUserRepo(), err: storeErr}
	svc := newTestAuthService(repo, "secret")

	result, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "pass"})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result on store fault")
	}
}
