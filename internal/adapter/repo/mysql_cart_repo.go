package repo

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/usecase"
)

// MySQLCartRepo stores carts document-style: mutations replace the whole line
// list, so the row layout never constrains the merge logic in the use case.
type MySQLCartRepo struct{ db *sql.DB }

func NewMySQLCartRepo(db *sql.DB) *MySQLCartRepo { return &MySQLCartRepo{db: db} }

func (r *MySQLCartRepo) Create(ctx context.Context, c *domain.Cart) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO carts (id,user_id,created_at) VALUES (?,?,?)`,
		c.ID, c.UserID, c.CreatedAt)
	return err
}

func (r *MySQLCartRepo) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	var c domain.Cart
	err := r.db.QueryRowContext(ctx,
		`SELECT id,user_id,created_at FROM carts WHERE user_id=?`, userID).
		Scan(&c.ID, &c.UserID, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT item_id,quantity FROM cart_lines WHERE cart_id=? ORDER BY pos`, c.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var l domain.CartLine
		if err := rows.Scan(&l.ItemID, &l.Quantity); err != nil {
			return nil, err
		}
		c.Lines = append(c.Lines, l)
	}
	return &c, rows.Err()
}

func (r *MySQLCartRepo) ReplaceLines(ctx context.Context, cartID string, lines []domain.CartLine) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_lines WHERE cart_id=?`, cartID); err != nil {
		return err
	}
	for pos, l := range lines {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO cart_lines (cart_id,item_id,quantity,pos) VALUES (?,?,?,?)
`, cartID, l.ItemID, l.Quantity, pos); err != nil {
			return err
		}
	}
	return tx.Commit()
}

var _ usecase.CartRepo = (*MySQLCartRepo)(nil)
