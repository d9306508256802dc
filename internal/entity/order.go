package domain

import "time"

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

// OrderLine is a cart line frozen at checkout time. UnitPrice is the catalog
// price at the moment the order was created and never changes afterwards,
// even when the referenced item is repriced.
type OrderLine struct {
	ItemID    string `json:"item_id"`
	Quantity  int32  `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
	Item      *Item  `json:"item,omitempty"`
}

// Order is an immutable receipt materialized from a cart. Total is computed
// once at creation and stored; it is never recomputed from live prices.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Lines     []OrderLine `json:"items"`
	Total     Money       `json:"total_price"`
	Status    Status      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewOrderFromCart snapshots a resolved cart into a pending order. Lines keep
// the cart's order. The cart itself is untouched; the caller clears it in the
// same storage transaction that persists the order.
func NewOrderFromCart(id string, cart *Cart, now time.Time) (*Order, error) {
	if cart.Empty() {
		return nil, ErrCartEmpty
	}
	o := &Order{
		ID:        id,
		UserID:    cart.UserID,
		Lines:     make([]OrderLine, 0, len(cart.Lines)),
		Status:    StatusPending,
		CreatedAt: now,
	}
	for _, l := range cart.Lines {
		if l.Item == nil {
			return nil, ErrItemNotFound
		}
		o.Lines = append(o.Lines, OrderLine{
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			UnitPrice: l.Item.Price,
			Item:      l.Item,
		})
		o.Total = l.Item.Price.Mul(l.Quantity).Add(o.Total)
	}
	return o, nil
}

// LineTotal sums quantity × frozen unit price across lines. Equals Total for
// any order built by NewOrderFromCart.
func (o *Order) LineTotal() Money {
	var total Money
	for _, l := range o.Lines {
		total = l.UnitPrice.Mul(l.Quantity).Add(total)
	}
	return total
}
