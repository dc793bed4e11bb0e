package repository

import (
	"context"
	"fmt"
	"strings"

	"pos-sync-gateway/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the accounts table and one table per resource family
// if they do not exist. Resource tables are generated from the family
// manifests so the schema and the upsert engine cannot drift apart.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sync_accounts (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			username TEXT,
			phone TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, family := range domain.Families {
		stmts = append(stmts, familyTableDDL(family))
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

func familyTableDDL(family domain.Family) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", family.Table)
	b.WriteString("\tid BIGSERIAL PRIMARY KEY,\n")
	b.WriteString("\taccount_id UUID NOT NULL REFERENCES sync_accounts (id),\n")
	b.WriteString("\texternal_id TEXT NOT NULL,\n")
	for _, field := range family.Fields {
		fmt.Fprintf(&b, "\t%s %s,\n", field.Column, columnType(field.Kind))
	}
	b.WriteString("\tcreated_at TIMESTAMPTZ NOT NULL DEFAULT now(),\n")
	b.WriteString("\tupdated_at TIMESTAMPTZ NOT NULL DEFAULT now(),\n")
	b.WriteString("\tUNIQUE (account_id, external_id)\n")
	b.WriteString(")")
	return b.String()
}

func columnType(kind domain.FieldKind) string {
	switch kind {
	case domain.FieldNumeric:
		return "NUMERIC"
	case domain.FieldBool:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}
