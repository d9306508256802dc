package queue

import (
	"context"
	"log/slog"
	"time"
)

// OutboxEvent is one undelivered row from the transactional outbox.
type OutboxEvent struct {
	ID      int64
	Channel string
	Payload []byte
}

// OutboxSource is the storage side of the outbox.
type OutboxSource interface {
	Pending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id int64) error
	Defer(ctx context.Context, id int64, delay time.Duration) error
}

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload []byte) error
}

const publishRetryDelay = 30 * time.Second

// OutboxDrainer polls the outbox and pushes pending events to the broker.
// Order creation commits the event row in the same transaction as the order,
// so a broker outage delays delivery but never loses it.
type OutboxDrainer struct {
	src      OutboxSource
	pub      EventPublisher
	log      *slog.Logger
	interval time.Duration
	batch    int
}

func NewOutboxDrainer(src OutboxSource, pub EventPublisher, log *slog.Logger, interval time.Duration, batch int) *OutboxDrainer {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if batch <= 0 {
		batch = 100
	}
	return &OutboxDrainer{src: src, pub: pub, log: log, interval: interval, batch: batch}
}

// Run blocks until ctx is cancelled.
func (d *OutboxDrainer) Run(ctx context.Context) {
	t := time.NewTicker(d.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n, err := d.drainOnce(ctx); err != nil {
				d.log.Error("outbox drain failed", "err", err)
			} else if n > 0 {
				d.log.Debug("outbox drained", "events", n)
			}
		}
	}
}

func (d *OutboxDrainer) drainOnce(ctx context.Context) (int, error) {
	events, err := d.src.Pending(ctx, d.batch)
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, ev := range events {
		if err := d.pub.Publish(ctx, ev.Channel, ev.Payload); err != nil {
			d.log.Warn("publish failed, deferring", "event_id", ev.ID, "channel", ev.Channel, "err", err)
			if err := d.src.Defer(ctx, ev.ID, publishRetryDelay); err != nil {
				return sent, err
			}
			continue
		}
		if err := d.src.MarkSent(ctx, ev.ID); err != nil {
			// Worst case the event goes out twice; consumers treat
			// deliveries as at-least-once.
			return sent, err
		}
		sent++
	}
	return sent, nil
}
