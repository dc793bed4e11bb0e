package ports

import "context"

// AccountCache caches positive email to account-id lookups in front of the
// account repository. Misses and cache failures are both reported as a miss;
// absence of an account is never cached.
type AccountCache interface {
	GetAccountID(ctx context.Context, email string) (string, bool)
	SetAccountID(ctx context.Context, email, accountID string)
}
