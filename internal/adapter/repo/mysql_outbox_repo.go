package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/dhruvsolvzz/SHOPING-CART/internal/adapter/queue"
)

// MySQLOutboxRepo reads and settles the transactional outbox. Rows are
// written by MySQLOrderRepo.CreateWithEvent inside the checkout transaction.
type MySQLOutboxRepo struct{ db *sql.DB }

func NewMySQLOutboxRepo(db *sql.DB) *MySQLOutboxRepo { return &MySQLOutboxRepo{db: db} }

func (r *MySQLOutboxRepo) Pending(ctx context.Context, limit int) ([]queue.OutboxEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,channel,payload FROM outbox
WHERE status='PENDING' AND next_attempt_at<=NOW()
ORDER BY id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []queue.OutboxEvent
	for rows.Next() {
		var ev queue.OutboxEvent
		if err := rows.Scan(&ev.ID, &ev.Channel, &ev.Payload); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *MySQLOutboxRepo) MarkSent(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE outbox SET status='SENT' WHERE id=?`, id)
	return err
}

func (r *MySQLOutboxRepo) Defer(ctx context.Context, id int64, delay time.Duration) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE outbox SET retry_count=retry_count+1,
 next_attempt_at=DATE_ADD(NOW(), INTERVAL ? SECOND)
WHERE id=?`, int64(delay.Seconds()), id)
	return err
}

var _ queue.OutboxSource = (*MySQLOutboxRepo)(nil)
