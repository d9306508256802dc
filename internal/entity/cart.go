package domain

import "time"

// CartLine holds one distinct item in a cart. Item is the resolved catalog
// record, filled in by the read side; only ItemID and Quantity are persisted.
type CartLine struct {
	ItemID   string `json:"item_id"`
	Quantity int32  `json:"quantity"`
	Item     *Item  `json:"item,omitempty"`
}

// Cart is a user's mutable shopping cart. One cart per user, created lazily
// and never deleted; checkout truncates Lines.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Lines     []CartLine `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
}

// Merge adds qty of itemID, folding into the existing line when the item is
// already present. The cart keeps at most one line per item id; line order is
// stable, new items append at the end.
func (c *Cart) Merge(itemID string, qty int32) {
	byItem := make(map[string]int, len(c.Lines))
	for i, l := range c.Lines {
		byItem[l.ItemID] = i
	}
	if i, ok := byItem[itemID]; ok {
		c.Lines[i].Quantity += qty
		return
	}
	c.Lines = append(c.Lines, CartLine{ItemID: itemID, Quantity: qty})
}

// Remove drops the whole line for itemID. Removal is all-or-nothing per item;
// there is no partial-quantity decrement. Reports whether the line existed.
func (c *Cart) Remove(itemID string) bool {
	for i, l := range c.Lines {
		if l.ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Empty() bool { return len(c.Lines) == 0 }

// Total sums quantity × live item price across resolved lines. Carts always
// price against the current catalog, so the display total can drift until
// checkout freezes it. Lines must be resolved first.
func (c *Cart) Total() Money {
	var total Money
	for _, l := range c.Lines {
		if l.Item == nil {
			continue
		}
		total = l.Item.Price.Mul(l.Quantity).Add(total)
	}
	return total
}
