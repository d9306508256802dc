package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
)

type Users struct {
	users  UserRepo
	carts  CartRepo
	hasher PasswordHasher
	tokens TokenSigner
}

func NewUsers(users UserRepo, carts CartRepo, hasher PasswordHasher, tokens TokenSigner) *Users {
	return &Users{users: users, carts: carts, hasher: hasher, tokens: tokens}
}

// AuthResult pairs a user with a freshly signed bearer token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// Register creates an account, its (initially empty) cart and a session token.
func (uc *Users) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	if _, err := uc.users.GetByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}

	// The cart is also created lazily on first access; creating it here just
	// matches the account bootstrap the storefront expects.
	cart := &domain.Cart{ID: uuid.NewString(), UserID: u.ID, CreatedAt: u.CreatedAt}
	if err := uc.carts.Create(ctx, cart); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Sign(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Token: token}, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords produce
// the same error so the response does not leak which accounts exist.
func (uc *Users) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	u, err := uc.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !uc.hasher.Compare(u.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := uc.tokens.Sign(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Token: token}, nil
}

// Me returns the account behind an authenticated user id.
func (uc *Users) Me(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}
