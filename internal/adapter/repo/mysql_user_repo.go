package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/usecase"
)

// MySQL error 1062: duplicate entry for a unique key.
const erDupEntry = 1062

type MySQLUserRepo struct{ db *sql.DB }

func NewMySQLUserRepo(db *sql.DB) *MySQLUserRepo { return &MySQLUserRepo{db: db} }

func (r *MySQLUserRepo) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id,username,password_hash,created_at)
VALUES (?,?,?,?)
`, u.ID, u.Username, u.PasswordHash, u.CreatedAt)
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == erDupEntry {
		return domain.ErrUsernameTaken
	}
	return err
}

func (r *MySQLUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.get(ctx, `SELECT id,username,password_hash,created_at FROM users WHERE id=?`, id)
}

func (r *MySQLUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.get(ctx, `SELECT id,username,password_hash,created_at FROM users WHERE username=?`, username)
}

func (r *MySQLUserRepo) get(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

var _ usecase.UserRepo = (*MySQLUserRepo)(nil)
