package domain

import "time"

// Account represents one local-application owner, keyed by email.
// Accounts are created on first registration and never updated afterwards;
// every synced resource belongs to exactly one account.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	Phone     string    `json:"no_telepon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterStatus reports the outcome of an account registration.
type RegisterStatus string

const (
	RegisterCreated RegisterStatus = "created"
	RegisterExists  RegisterStatus = "exists"
)
