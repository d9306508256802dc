package kafka

import (
	"context"
	"log/slog"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/usecase"
)

// PaymentResultHandler moves orders out of "pending" when the payment
// processor reports a result. The transition is guarded: an order that
// already left pending is not touched again.
type PaymentResultHandler struct {
	Orders usecase.OrderStore
	Cache  usecase.StatusCache // optional
	Log    *slog.Logger
}

func NewPaymentResultHandler(orders usecase.OrderStore, cache usecase.StatusCache, log *slog.Logger) *PaymentResultHandler {
	return &PaymentResultHandler{Orders: orders, Cache: cache, Log: log}
}

func (h *PaymentResultHandler) Handle(ctx context.Context, ev usecase.PaymentResultMsg) error {
	var target domain.Status
	switch ev.Status {
	case "SUCCESS":
		target = domain.StatusPaid
	default:
		target = domain.StatusFailed
	}

	updated, err := h.Orders.UpdateStatusIf(ctx, ev.OrderID, domain.StatusPending, target)
	if err != nil {
		return err
	}
	if !updated {
		// Unknown order or a duplicate delivery after the transition.
		h.Log.Info("payment result ignored", "order_id", ev.OrderID, "status", ev.Status)
		return nil
	}

	if h.Cache != nil {
		_ = h.Cache.SetStatus(ctx, ev.OrderID, string(target))
	}
	return nil
}
