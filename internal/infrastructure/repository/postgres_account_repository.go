package repository

import (
	"context"
	"errors"
	"fmt"

	"pos-sync-gateway/internal/domain"
	"pos-sync-gateway/internal/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresAccountRepository implements AccountRepository using Postgres.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAccountRepository creates a new Postgres account repository.
func NewPostgresAccountRepository(pool *pgxpool.Pool) ports.AccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

// GetByEmail retrieves an account by exact email match.
func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	var username, phone *string

	err := r.pool.QueryRow(ctx,
		`SELECT id, email, username, phone, created_at FROM sync_accounts WHERE email = $1`,
		email,
	).Scan(&account.ID, &account.Email, &username, &phone, &account.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if username != nil {
		account.Username = *username
	}
	if phone != nil {
		account.Phone = *phone
	}
	return &account, nil
}

// CreateIfAbsent inserts the account unless the email is already registered.
// The unique constraint on email makes the conditional insert atomic, so a
// racing duplicate registration loses cleanly instead of erroring.
func (r *PostgresAccountRepository) CreateIfAbsent(ctx context.Context, account *domain.Account) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO sync_accounts (id, email, username, phone)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO NOTHING`,
		account.ID, account.Email, textOrNull(account.Username), textOrNull(account.Phone),
	)
	if err != nil {
		return false, fmt.Errorf("failed to create account: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func textOrNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}
