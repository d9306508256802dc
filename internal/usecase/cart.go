package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
)

// Carts owns cart mutation: lazy creation, merge-by-item-id adds and
// whole-line removes. Every result comes back with items resolved.
type Carts struct {
	carts CartRepo
	items ItemRepo
}

func NewCarts(carts CartRepo, items ItemRepo) *Carts {
	return &Carts{carts: carts, items: items}
}

// Get returns the user's cart, creating an empty one on first access.
func (uc *Carts) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := uc.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := resolveCart(ctx, uc.items, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem puts qty of itemID into the user's cart. An existing line for the
// item absorbs the quantity; the cart never holds duplicate lines.
func (uc *Carts) AddItem(ctx context.Context, userID, itemID string, qty int32) (*domain.Cart, error) {
	if qty < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	if _, err := uc.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	cart, err := uc.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.Merge(itemID, qty)
	if err := uc.carts.ReplaceLines(ctx, cart.ID, cart.Lines); err != nil {
		return nil, err
	}
	if err := resolveCart(ctx, uc.items, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops the entire line for itemID, whatever its quantity.
func (uc *Carts) RemoveItem(ctx context.Context, userID, itemID string) (*domain.Cart, error) {
	cart, err := uc.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !cart.Remove(itemID) {
		return nil, domain.ErrItemNotInCart
	}
	if err := uc.carts.ReplaceLines(ctx, cart.ID, cart.Lines); err != nil {
		return nil, err
	}
	if err := resolveCart(ctx, uc.items, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (uc *Carts) getOrCreate(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := uc.carts.GetByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, domain.ErrCartNotFound) {
		return nil, err
	}
	cart = &domain.Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.carts.Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
