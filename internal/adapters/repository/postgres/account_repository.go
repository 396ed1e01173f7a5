package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/hr-selfservice/internal/core/account"
	pgdb "github.com/ogurasousui/hr-selfservice/internal/platform/db/postgres"
)

// AccountRepository は PostgreSQL を利用したアカウント永続化の実装です。
type AccountRepository struct {
	pool pgdb.Queryer
}

// NewAccountRepository は AccountRepository を生成します。
func NewAccountRepository(pool pgdb.Queryer) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// FindByID は ID でアカウントを取得します。
func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*account.Account, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, username, email, password_hash, role, created_at, updated_at
          FROM accounts
         WHERE id = $1
         LIMIT 1
    `, id)

	return scanAccount(row)
}

// FindByUsername はユーザー名でアカウントを取得します。
func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*account.Account, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, username, email, password_hash, role, created_at, updated_at
          FROM accounts
         WHERE username = $1
         LIMIT 1
    `, username)

	return scanAccount(row)
}

func scanAccount(row pgx.Row) (*account.Account, error) {
	var (
		id           int64
		username     string
		email        string
		passwordHash string
		role         string
		createdAt    time.Time
		updatedAt    time.Time
	)

	if err := row.Scan(&id, &username, &email, &passwordHash, &role, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, err
	}

	return &account.Account{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         account.Role(role),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}
