package usecase

import (
	"context"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
)

type ItemRepo interface {
	Create(ctx context.Context, it *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error) // newest first
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error // ErrUsernameTaken on duplicate
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type CartRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error) // ErrCartNotFound when absent
	Create(ctx context.Context, c *domain.Cart) error
	// ReplaceLines overwrites the cart's whole line list, preserving order.
	ReplaceLines(ctx context.Context, cartID string, lines []domain.CartLine) error
}

type OrderStore interface {
	// CreateWithEvent persists the order, truncates the source cart's lines
	// and records the outbox event in a single transaction.
	CreateWithEvent(ctx context.Context, o *domain.Order, cartID string, eventPayload []byte) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error) // newest first
	UpdateStatusIf(ctx context.Context, id string, from, to domain.Status) (bool, error)
}

type IdempotencyStore interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Remember(ctx context.Context, scope, key, value string) error
	Recall(ctx context.Context, scope, key string) (string, bool, error)
}

type StatusCache interface {
	SetStatus(ctx context.Context, orderID string, status string) error
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

type TokenSigner interface {
	Sign(userID string) (string, error)
}
