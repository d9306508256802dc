package usecase

import (
	"context"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
)

// Orders is the read side of order history.
type Orders struct {
	orders OrderStore
	items  ItemRepo
}

func NewOrders(orders OrderStore, items ItemRepo) *Orders {
	return &Orders{orders: orders, items: items}
}

// List returns the user's orders, newest first, with item details resolved.
func (uc *Orders) List(ctx context.Context, userID string) ([]domain.Order, error) {
	list, err := uc.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	refs := make([]*domain.Order, len(list))
	for i := range list {
		refs[i] = &list[i]
	}
	if err := resolveOrderLines(ctx, uc.items, refs...); err != nil {
		return nil, err
	}
	return list, nil
}
