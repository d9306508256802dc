package repo

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/usecase"
)

// OutboxChannelOrderCreated is the outbox channel (and AMQP routing key) for
// freshly materialized orders.
const OutboxChannelOrderCreated = "orders.created.v1"

type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

// CreateWithEvent persists the order with its lines, records the outbox event
// and truncates the source cart, all in one transaction. Either the order
// exists and the cart is empty, or neither happened.
func (r *MySQLOrderRepo) CreateWithEvent(ctx context.Context, o *domain.Order, cartID string, eventPayload []byte) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO orders (id,user_id,status,total_cents,currency,created_at,updated_at)
VALUES (?,?,?,?,?,?,?)
`, o.ID, o.UserID, string(o.Status), o.Total.Cents, o.Total.Currency, o.CreatedAt, o.CreatedAt); err != nil {
		return err
	}

	for pos, l := range o.Lines {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO order_lines (order_id,item_id,quantity,unit_price_cents,currency,pos)
VALUES (?,?,?,?,?,?)
`, o.ID, l.ItemID, l.Quantity, l.UnitPrice.Cents, l.UnitPrice.Currency, pos); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO outbox (channel,payload,status,retry_count,next_attempt_at,created_at)
VALUES (?,?,'PENDING',0,NOW(),NOW())
`, OutboxChannelOrderCreated, eventPayload); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_lines WHERE cart_id=?`, cartID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *MySQLOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	var status string
	err := r.db.QueryRowContext(ctx, `
SELECT id,user_id,status,total_cents,currency,created_at
FROM orders WHERE id=?`, id).
		Scan(&o.ID, &o.UserID, &status, &o.Total.Cents, &o.Total.Currency, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Status = domain.Status(status)
	if err := r.loadLines(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *MySQLOrderRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,user_id,status,total_cents,currency,created_at
FROM orders WHERE user_id=?
ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		var status string
		if err := rows.Scan(&o.ID, &o.UserID, &status, &o.Total.Cents, &o.Total.Currency, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Status = domain.Status(status)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range orders {
		if err := r.loadLines(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *MySQLOrderRepo) loadLines(ctx context.Context, o *domain.Order) error {
	rows, err := r.db.QueryContext(ctx, `
SELECT item_id,quantity,unit_price_cents,currency
FROM order_lines WHERE order_id=? ORDER BY pos`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var l domain.OrderLine
		if err := rows.Scan(&l.ItemID, &l.Quantity, &l.UnitPrice.Cents, &l.UnitPrice.Currency); err != nil {
			return err
		}
		o.Lines = append(o.Lines, l)
	}
	return rows.Err()
}

// UpdateStatusIf transitions id from one status to another. rows == 0 means
// not found or a status mismatch; the caller decides whether that matters.
func (r *MySQLOrderRepo) UpdateStatusIf(ctx context.Context, id string, from, to domain.Status) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE orders SET status=?, updated_at=NOW()
WHERE id=? AND status=?`, string(to), id, string(from))
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

var _ usecase.OrderStore = (*MySQLOrderRepo)(nil)
