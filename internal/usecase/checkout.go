package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
)

// ErrDuplicateCheckout means another request holds the idempotency lock for
// the same (user, key) and has not recorded its order yet.
var ErrDuplicateCheckout = errors.New("duplicate checkout request")

// Checkout materializes a user's cart into a pending order: freeze unit
// prices, compute the total once, persist the order and clear the cart in one
// storage transaction.
type Checkout struct {
	carts  CartRepo
	items  ItemRepo
	orders OrderStore
	idem   IdempotencyStore
}

func NewCheckout(carts CartRepo, items ItemRepo, orders OrderStore, idem IdempotencyStore) *Checkout {
	return &Checkout{carts: carts, items: items, orders: orders, idem: idem}
}

// Execute creates an order from the user's cart. idemKey may be empty; when
// set, a replay with the same key returns the original order instead of
// creating a second one.
func (uc *Checkout) Execute(ctx context.Context, userID, idemKey string) (*domain.Order, error) {
	if idemKey != "" {
		if id, ok, _ := uc.idem.Recall(ctx, userID, idemKey); ok {
			return uc.lookup(ctx, id)
		}
		ok, err := uc.idem.TryLock(ctx, userID, idemKey)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrDuplicateCheckout
		}
	}

	cart, err := uc.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := resolveCart(ctx, uc.items, cart); err != nil {
		return nil, err
	}

	order, err := domain.NewOrderFromCart(uuid.NewString(), cart, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(OrderCreatedMsg{
		OrderID:    order.ID,
		UserID:     order.UserID,
		TotalCents: order.Total.Cents,
		Currency:   order.Total.Currency,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.orders.CreateWithEvent(ctx, order, cart.ID, payload); err != nil {
		return nil, err
	}

	if idemKey != "" {
		_ = uc.idem.Remember(ctx, userID, idemKey, order.ID)
	}
	return order, nil
}

func (uc *Checkout) lookup(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := resolveOrderLines(ctx, uc.items, order); err != nil {
		return nil, err
	}
	return order, nil
}
