package domain

import "time"

const (
	DefaultImageURL = "https://via.placeholder.com/150"
	DefaultCategory = "general"
)

// Item is a catalog product. Immutable once created as far as the cart/order
// flow is concerned; orders freeze their own copy of the price.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       Money     `json:"price"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

func (i *Item) Validate() error {
	if i.Name == "" {
		return ErrInvalidName
	}
	if i.Price.Cents <= 0 {
		return ErrInvalidPrice
	}
	return nil
}
