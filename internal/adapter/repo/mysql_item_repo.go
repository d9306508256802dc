package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/usecase"
)

type MySQLItemRepo struct{ db *sql.DB }

func NewMySQLItemRepo(db *sql.DB) *MySQLItemRepo { return &MySQLItemRepo{db: db} }

const itemCols = `id,name,description,price_cents,currency,image_url,category,created_at`

func (r *MySQLItemRepo) Create(ctx context.Context, it *domain.Item) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO items (`+itemCols+`)
VALUES (?,?,?,?,?,?,?,?)
`, it.ID, it.Name, it.Description, it.Price.Cents, it.Price.Currency, it.ImageURL, it.Category, it.CreatedAt)
	return err
}

func (r *MySQLItemRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemCols+` FROM items WHERE id=?`, id)
	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	return it, err
}

func (r *MySQLItemRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Item, error) {
	out := make(map[string]*domain.Item, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemCols+` FROM items WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out[it.ID] = it
	}
	return out, rows.Err()
}

func (r *MySQLItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemCols+` FROM items ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var it domain.Item
	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Price.Cents, &it.Price.Currency,
		&it.ImageURL, &it.Category, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

var _ usecase.ItemRepo = (*MySQLItemRepo)(nil)
