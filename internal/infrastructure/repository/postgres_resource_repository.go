package repository

import (
	"context"
	"fmt"
	"strings"

	"pos-sync-gateway/internal/domain"
	"pos-sync-gateway/internal/ports"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresResourceRepository implements ResourceRepository using Postgres.
// One repository serves every resource family; the family manifest supplies
// the table and column list.
type PostgresResourceRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresResourceRepository creates a new Postgres resource repository.
func NewPostgresResourceRepository(pool *pgxpool.Pool) ports.ResourceRepository {
	return &PostgresResourceRepository{pool: pool}
}

// Upsert inserts or fully overwrites the row keyed by (accountID, externalID)
// as a single statement, so concurrent syncs of the same pair cannot race a
// check against a write; the last completed statement wins.
func (r *PostgresResourceRepository) Upsert(ctx context.Context, family domain.Family, accountID, externalID string, values map[string]any) (domain.UpsertOutcome, error) {
	query, args := buildUpsert(family, accountID, externalID, values)

	// xmax is zero only on a freshly inserted row, which distinguishes
	// created from updated without a second query.
	var inserted bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&inserted); err != nil {
		return "", fmt.Errorf("failed to upsert %s: %w", family.Name, err)
	}

	if inserted {
		return domain.OutcomeCreated, nil
	}
	return domain.OutcomeUpdated, nil
}

func buildUpsert(family domain.Family, accountID, externalID string, values map[string]any) (string, []any) {
	columns := []string{"account_id", "external_id"}
	args := []any{accountID, externalID}
	for _, field := range family.Fields {
		columns = append(columns, field.Column)
		args = append(args, values[field.Column])
	}

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	assignments := make([]string, 0, len(family.Fields)+1)
	for _, field := range family.Fields {
		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", field.Column, field.Column))
	}
	assignments = append(assignments, "updated_at = now()")

	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s)
		 ON CONFLICT (account_id, external_id) DO UPDATE SET %s
		 RETURNING (xmax = 0)`,
		family.Table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(assignments, ", "),
	)

	return query, args
}
