package usecase

import (
	"context"
	"fmt"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
)

// In-memory stores standing in for MySQL/Redis, per the constructor-injected
// storage design. They copy on the way in and out so tests catch any code
// that relies on shared mutable state.

type memItems struct {
	byID  map[string]*domain.Item
	order []string // creation order; List returns the reverse
}

func newMemItems(items ...domain.Item) *memItems {
	m := &memItems{byID: map[string]*domain.Item{}}
	for _, it := range items {
		cp := it
		m.byID[it.ID] = &cp
		m.order = append(m.order, it.ID)
	}
	return m
}

func (m *memItems) setPrice(id string, cents int64) {
	m.byID[id].Price.Cents = cents
}

func (m *memItems) Create(_ context.Context, it *domain.Item) error {
	cp := *it
	m.byID[it.ID] = &cp
	m.order = append(m.order, it.ID)
	return nil
}

func (m *memItems) GetByID(_ context.Context, id string) (*domain.Item, error) {
	it, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	cp := *it
	return &cp, nil
}

func (m *memItems) GetByIDs(_ context.Context, ids []string) (map[string]*domain.Item, error) {
	out := map[string]*domain.Item{}
	for _, id := range ids {
		if it, ok := m.byID[id]; ok {
			cp := *it
			out[id] = &cp
		}
	}
	return out, nil
}

func (m *memItems) List(_ context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, *m.byID[m.order[i]])
	}
	return out, nil
}

type memCarts struct {
	byUser map[string]*domain.Cart
	byID   map[string]*domain.Cart
}

func newMemCarts() *memCarts {
	return &memCarts{byUser: map[string]*domain.Cart{}, byID: map[string]*domain.Cart{}}
}

func (m *memCarts) GetByUser(_ context.Context, userID string) (*domain.Cart, error) {
	c, ok := m.byUser[userID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	return copyCart(c), nil
}

func (m *memCarts) Create(_ context.Context, c *domain.Cart) error {
	cp := copyCart(c)
	m.byUser[c.UserID] = cp
	m.byID[c.ID] = cp
	return nil
}

func (m *memCarts) ReplaceLines(_ context.Context, cartID string, lines []domain.CartLine) error {
	c, ok := m.byID[cartID]
	if !ok {
		return fmt.Errorf("unknown cart %s", cartID)
	}
	c.Lines = nil
	for _, l := range lines {
		c.Lines = append(c.Lines, domain.CartLine{ItemID: l.ItemID, Quantity: l.Quantity})
	}
	return nil
}

func copyCart(c *domain.Cart) *domain.Cart {
	cp := *c
	cp.Lines = nil
	for _, l := range c.Lines {
		cp.Lines = append(cp.Lines, domain.CartLine{ItemID: l.ItemID, Quantity: l.Quantity})
	}
	return &cp
}

type memOrders struct {
	carts      *memCarts
	byID       map[string]*domain.Order
	order      []string // creation order; ListByUser returns the reverse
	events     [][]byte
	failCreate error
}

func newMemOrders(carts *memCarts) *memOrders {
	return &memOrders{carts: carts, byID: map[string]*domain.Order{}}
}

func (m *memOrders) CreateWithEvent(_ context.Context, o *domain.Order, cartID string, payload []byte) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	cp := *o
	cp.Lines = nil
	for _, l := range o.Lines {
		cp.Lines = append(cp.Lines, domain.OrderLine{ItemID: l.ItemID, Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	m.byID[o.ID] = &cp
	m.order = append(m.order, o.ID)
	m.events = append(m.events, payload)
	// same "transaction" clears the cart
	if c, ok := m.carts.byID[cartID]; ok {
		c.Lines = nil
	}
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	cp.Lines = append([]domain.OrderLine(nil), o.Lines...)
	return &cp, nil
}

func (m *memOrders) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for i := len(m.order) - 1; i >= 0; i-- {
		o := m.byID[m.order[i]]
		if o.UserID != userID {
			continue
		}
		cp := *o
		cp.Lines = append([]domain.OrderLine(nil), o.Lines...)
		out = append(out, cp)
	}
	return out, nil
}

func (m *memOrders) UpdateStatusIf(_ context.Context, id string, from, to domain.Status) (bool, error) {
	o, ok := m.byID[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

type memIdem struct {
	locks map[string]bool
	vals  map[string]string
}

func newMemIdem() *memIdem {
	return &memIdem{locks: map[string]bool{}, vals: map[string]string{}}
}

func (m *memIdem) TryLock(_ context.Context, scope, key string) (bool, error) {
	k := scope + ":" + key
	if m.locks[k] {
		return false, nil
	}
	m.locks[k] = true
	return true, nil
}

func (m *memIdem) Remember(_ context.Context, scope, key, value string) error {
	m.vals[scope+":"+key] = value
	return nil
}

func (m *memIdem) Recall(_ context.Context, scope, key string) (string, bool, error) {
	v, ok := m.vals[scope+":"+key]
	return v, ok, nil
}

type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (plainHasher) Compare(hash, plain string) bool   { return hash == "hashed:"+plain }

type staticSigner struct{}

func (staticSigner) Sign(userID string) (string, error) { return "token-for-" + userID, nil }
