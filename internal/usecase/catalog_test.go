package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
)

func TestCatalogCreateAppliesDefaults(t *testing.T) {
	uc := NewCatalog(newMemItems(), "USD")

	it, err := uc.Create(context.Background(), CreateItemInput{
		Name:       "  widget  ",
		PriceCents: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "widget", it.Name)
	assert.Equal(t, domain.Money{Cents: 1000, Currency: "USD"}, it.Price)
	assert.Equal(t, domain.DefaultImageURL, it.ImageURL)
	assert.Equal(t, domain.DefaultCategory, it.Category)
	assert.NotEmpty(t, it.ID)
}

func TestCatalogCreateValidation(t *testing.T) {
	uc := NewCatalog(newMemItems(), "USD")
	ctx := context.Background()

	_, err := uc.Create(ctx, CreateItemInput{Name: "", PriceCents: 100})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = uc.Create(ctx, CreateItemInput{Name: "widget", PriceCents: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = uc.Create(ctx, CreateItemInput{Name: "widget", PriceCents: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestCatalogGetAndList(t *testing.T) {
	items := newMemItems()
	uc := NewCatalog(items, "USD")
	ctx := context.Background()

	first, err := uc.Create(ctx, CreateItemInput{Name: "widget", PriceCents: 100})
	require.NoError(t, err)
	second, err := uc.Create(ctx, CreateItemInput{Name: "gadget", PriceCents: 200})
	require.NoError(t, err)

	got, err := uc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "widget", got.Name)

	_, err = uc.Get(ctx, "no-such-item")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
}
