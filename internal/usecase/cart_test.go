package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
)

func catalogFixture() *memItems {
	now := time.Now().UTC()
	return newMemItems(
		domain.Item{ID: "item-a", Name: "widget", Price: domain.Money{Cents: 1000, Currency: "USD"}, CreatedAt: now},
		domain.Item{ID: "item-b", Name: "gadget", Price: domain.Money{Cents: 500, Currency: "USD"}, CreatedAt: now.Add(time.Second)},
	)
}

func TestCartsGetCreatesLazily(t *testing.T) {
	uc := NewCarts(newMemCarts(), catalogFixture())

	cart, err := uc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", cart.UserID)
	assert.NotEmpty(t, cart.ID)
	assert.Empty(t, cart.Lines)

	again, err := uc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID, "same cart on repeat access")
}

func TestCartsAddItemMergesQuantities(t *testing.T) {
	uc := NewCarts(newMemCarts(), catalogFixture())
	ctx := context.Background()

	for _, qty := range []int32{2, 3, 1} {
		_, err := uc.AddItem(ctx, "user-1", "item-a", qty)
		require.NoError(t, err)
	}

	cart, err := uc.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1, "one line per distinct item")
	assert.Equal(t, int32(6), cart.Lines[0].Quantity)
}

func TestCartsAddItemResolvesDetails(t *testing.T) {
	uc := NewCarts(newMemCarts(), catalogFixture())

	cart, err := uc.AddItem(context.Background(), "user-1", "item-a", 2)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	require.NotNil(t, cart.Lines[0].Item)
	assert.Equal(t, "widget", cart.Lines[0].Item.Name)
	assert.Equal(t, int64(2000), cart.Total().Cents)
}

func TestCartsAddItemValidation(t *testing.T) {
	carts := newMemCarts()
	uc := NewCarts(carts, catalogFixture())
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "user-1", "item-a", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.AddItem(ctx, "user-1", "item-a", -3)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.AddItem(ctx, "user-1", "no-such-item", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	// failed adds never create or mutate the cart
	_, err = carts.GetByUser(ctx, "user-1")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}

func TestCartsAddItemLeavesCartUnchangedOnUnknownItem(t *testing.T) {
	uc := NewCarts(newMemCarts(), catalogFixture())
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "user-1", "item-a", 2)
	require.NoError(t, err)

	_, err = uc.AddItem(ctx, "user-1", "no-such-item", 1)
	require.ErrorIs(t, err, domain.ErrItemNotFound)

	cart, err := uc.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int32(2), cart.Lines[0].Quantity)
}

func TestCartsRemoveItem(t *testing.T) {
	uc := NewCarts(newMemCarts(), catalogFixture())
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "user-1", "item-a", 5)
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, "user-1", "item-b", 1)
	require.NoError(t, err)

	cart, err := uc.RemoveItem(ctx, "user-1", "item-a")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1, "whole line removed, not decremented")
	assert.Equal(t, "item-b", cart.Lines[0].ItemID)
}

func TestCartsRemoveItemErrors(t *testing.T) {
	uc := NewCarts(newMemCarts(), catalogFixture())
	ctx := context.Background()

	_, err := uc.RemoveItem(ctx, "user-1", "item-a")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)

	_, err = uc.AddItem(ctx, "user-1", "item-a", 1)
	require.NoError(t, err)
	_, err = uc.RemoveItem(ctx, "user-1", "item-b")
	assert.ErrorIs(t, err, domain.ErrItemNotInCart)
}

func TestCartsRemoveThenAddStartsFresh(t *testing.T) {
	uc := NewCarts(newMemCarts(), catalogFixture())
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "user-1", "item-a", 9)
	require.NoError(t, err)
	_, err = uc.RemoveItem(ctx, "user-1", "item-a")
	require.NoError(t, err)

	cart, err := uc.AddItem(ctx, "user-1", "item-a", 2)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int32(2), cart.Lines[0].Quantity)
}
