package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"pos-sync-gateway/internal/domain"
	"pos-sync-gateway/internal/ports"

	"github.com/rs/zerolog"
)

// SyncService is the upsert engine shared by every resource endpoint. A sync
// payload carries the owning account's email, the external id assigned by the
// local application, and the family's fields; the engine validates the payload
// against the family manifest, resolves the owner, and issues one atomic
// insert-or-overwrite keyed by (account, external id).
type SyncService struct {
	accounts  *AccountService
	resources ports.ResourceRepository
	logger    zerolog.Logger
}

// NewSyncService creates a new sync service.
func NewSyncService(
	accounts *AccountService,
	resources ports.ResourceRepository,
	logger zerolog.Logger,
) *SyncService {
	return &SyncService{
		accounts:  accounts,
		resources: resources,
		logger:    logger,
	}
}

// Sync upserts one resource row from a decoded JSON payload. Validation
// failures and unknown accounts are reported before any write; whatever the
// outcome, the row's final state depends only on the last completed call for
// its (account, external id) pair.
func (s *SyncService) Sync(ctx context.Context, family domain.Family, body map[string]any) (domain.UpsertOutcome, error) {
	email := scalarString(body["email"])
	externalID := scalarString(body["id"])

	verr := &domain.ValidationError{}
	if email == "" {
		verr.Missing = append(verr.Missing, "email")
	}
	if externalID == "" {
		verr.Missing = append(verr.Missing, "id")
	}

	values := make(map[string]any, len(family.Fields))
	for _, field := range family.Fields {
		value, err := coerceValue(field.Kind, body[field.JSON])
		if err != nil {
			verr.Invalid = append(verr.Invalid, field.JSON)
			continue
		}
		if field.Required && isEmpty(value) {
			verr.Missing = append(verr.Missing, field.JSON)
			continue
		}
		// Absent optional fields stay nil: an overwrite clears them.
		values[field.Column] = value
	}

	if len(verr.Missing) > 0 || len(verr.Invalid) > 0 {
		return "", verr
	}

	accountID, err := s.accounts.Resolve(ctx, email)
	if err != nil {
		return "", err
	}

	outcome, err := s.resources.Upsert(ctx, family, accountID, externalID, values)
	if err != nil {
		return "", fmt.Errorf("failed to sync %s: %w", family.Name, err)
	}

	s.logger.Info().
		Str("resource", family.Name).
		Str("accountID", accountID).
		Str("externalID", externalID).
		Str("outcome", string(outcome)).
		Msg("Synced resource")

	return outcome, nil
}

// scalarString renders an email or external id from whatever scalar the local
// application sent. External ids arrive as numbers from some clients and as
// strings from others; both map to the same key.
func scalarString(raw any) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// coerceValue converts a raw decoded JSON value to the field's kind. A nil
// result means the field was absent or null. Bodies are decoded with
// UseNumber, so numbers arrive as json.Number.
func coerceValue(kind domain.FieldKind, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}

	switch kind {
	case domain.FieldText:
		switch v := raw.(type) {
		case string:
			return v, nil
		case json.Number:
			return v.String(), nil
		case bool:
			return strconv.FormatBool(v), nil
		}
	case domain.FieldNumeric:
		switch v := raw.(type) {
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return nil, err
			}
			return f, nil
		case string:
			if strings.TrimSpace(v) == "" {
				return nil, nil
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, err
			}
			return f, nil
		}
	case domain.FieldBool:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return nil, err
			}
			return f != 0, nil
		case string:
			if strings.TrimSpace(v) == "" {
				return nil, nil
			}
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, err
			}
			return b, nil
		}
	}

	return nil, fmt.Errorf("unsupported value of type %T", raw)
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
