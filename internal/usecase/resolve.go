package usecase

import (
	"context"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
)

// resolveCart fills in the catalog item on every cart line (denormalized join
// for display). Lines whose item has vanished keep a nil Item; callers that
// need full resolution check for that themselves.
func resolveCart(ctx context.Context, items ItemRepo, c *domain.Cart) error {
	if len(c.Lines) == 0 {
		return nil
	}
	ids := make([]string, 0, len(c.Lines))
	for _, l := range c.Lines {
		ids = append(ids, l.ItemID)
	}
	byID, err := items.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range c.Lines {
		c.Lines[i].Item = byID[c.Lines[i].ItemID]
	}
	return nil
}

// resolveOrderLines does the same for order lines. The frozen unit price is
// authoritative; the resolved item is display metadata only.
func resolveOrderLines(ctx context.Context, items ItemRepo, orders ...*domain.Order) error {
	idSet := map[string]struct{}{}
	for _, o := range orders {
		for _, l := range o.Lines {
			idSet[l.ItemID] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return nil
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	byID, err := items.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, o := range orders {
		for i := range o.Lines {
			o.Lines[i].Item = byID[o.Lines[i].ItemID]
		}
	}
	return nil
}
