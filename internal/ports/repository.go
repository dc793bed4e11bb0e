package ports

import (
	"context"

	"pos-sync-gateway/internal/domain"
)

// AccountRepository defines the interface for account persistence.
type AccountRepository interface {
	// GetByEmail returns the account for an email, or nil when no account
	// exists (not an error).
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	// CreateIfAbsent inserts the account unless one with the same email
	// already exists. It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, account *domain.Account) (bool, error)
}

// ResourceRepository defines the interface for synced resource persistence.
type ResourceRepository interface {
	// Upsert writes one row keyed by (accountID, externalID) in the family's
	// table, inserting it or fully overwriting every manifest column. values
	// maps column name to a coerced value; absent optional fields are nil so
	// an overwrite clears them.
	Upsert(ctx context.Context, family domain.Family, accountID, externalID string, values map[string]any) (domain.UpsertOutcome, error)
}
