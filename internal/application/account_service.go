package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pos-sync-gateway/internal/domain"
	"pos-sync-gateway/internal/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AccountService resolves emails to account ids and handles registration.
type AccountService struct {
	accounts ports.AccountRepository
	cache    ports.AccountCache
	logger   zerolog.Logger
}

// NewAccountService creates a new account service.
func NewAccountService(
	accounts ports.AccountRepository,
	cache ports.AccountCache,
	logger zerolog.Logger,
) *AccountService {
	return &AccountService{
		accounts: accounts,
		cache:    cache,
		logger:   logger,
	}
}

// RegisterInput represents input for account registration.
type RegisterInput struct {
	Email    string
	Username string
	Phone    string
}

// Register creates an account for the email unless one already exists.
// The insert is conditional on the unique email constraint, so two racing
// registrations for the same unseen email resolve to one created and one
// exists instead of a duplicate row or a surfaced conflict.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (domain.RegisterStatus, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return "", &domain.ValidationError{Missing: []string{"email"}}
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		// Fall back to the local part of the email.
		username = email
		if at := strings.Index(email, "@"); at > 0 {
			username = email[:at]
		}
	}

	account := &domain.Account{
		ID:        uuid.NewString(),
		Email:     email,
		Username:  username,
		Phone:     strings.TrimSpace(input.Phone),
		CreatedAt: time.Now(),
	}

	created, err := s.accounts.CreateIfAbsent(ctx, account)
	if err != nil {
		return "", fmt.Errorf("failed to register account: %w", err)
	}

	if !created {
		s.logger.Debug().Str("email", email).Msg("Account already registered")
		return domain.RegisterExists, nil
	}

	s.cache.SetAccountID(ctx, email, account.ID)
	s.logger.Info().Str("email", email).Str("accountID", account.ID).Msg("Registered new account")
	return domain.RegisterCreated, nil
}

// Resolve maps an email to an existing account id. It returns
// domain.ErrAccountNotFound when no account is registered for the email;
// it never creates one.
func (s *AccountService) Resolve(ctx context.Context, email string) (string, error) {
	if id, ok := s.cache.GetAccountID(ctx, email); ok {
		return id, nil
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return "", domain.ErrAccountNotFound
	}

	s.cache.SetAccountID(ctx, email, account.ID)
	return account.ID, nil
}
