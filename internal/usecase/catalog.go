package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
)

type Catalog struct {
	items    ItemRepo
	currency string
}

func NewCatalog(items ItemRepo, currency string) *Catalog {
	return &Catalog{items: items, currency: currency}
}

type CreateItemInput struct {
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	Category    string
}

func (uc *Catalog) Create(ctx context.Context, in CreateItemInput) (*domain.Item, error) {
	it := &domain.Item{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       domain.Money{Cents: in.PriceCents, Currency: uc.currency},
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		CreatedAt:   time.Now().UTC(),
	}
	if it.ImageURL == "" {
		it.ImageURL = domain.DefaultImageURL
	}
	if it.Category == "" {
		it.Category = domain.DefaultCategory
	}
	if err := it.Validate(); err != nil {
		return nil, err
	}
	if err := uc.items.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (uc *Catalog) Get(ctx context.Context, id string) (*domain.Item, error) {
	return uc.items.GetByID(ctx, id)
}

func (uc *Catalog) List(ctx context.Context) ([]domain.Item, error) {
	return uc.items.List(ctx)
}
