package cache

import "context"

// NoopAccountCache satisfies AccountCache when no Redis address is
// configured; every lookup is a miss and falls through to the repository.
type NoopAccountCache struct{}

// NewNoopAccountCache creates a new noop account cache.
func NewNoopAccountCache() *NoopAccountCache {
	return &NoopAccountCache{}
}

// GetAccountID always misses.
func (*NoopAccountCache) GetAccountID(context.Context, string) (string, bool) {
	return "", false
}

// SetAccountID discards the entry.
func (*NoopAccountCache) SetAccountID(context.Context, string, string) {}
