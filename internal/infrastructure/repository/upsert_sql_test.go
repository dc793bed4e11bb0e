package repository

import (
	"fmt"
	"testing"

	"pos-sync-gateway/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFamily(t *testing.T, name string) domain.Family {
	t.Helper()
	for _, f := range domain.Families {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("unknown family %q", name)
	return domain.Family{}
}

func TestBuildUpsertKategori(t *testing.T) {
	kategori := findFamily(t, "kategori")
	query, args := buildUpsert(kategori, "acc-1", "42", map[string]any{"nama": "Drinks"})

	assert.Contains(t, query, "INSERT INTO sync_categories (account_id, external_id, nama)")
	assert.Contains(t, query, "VALUES ($1, $2, $3)")
	assert.Contains(t, query, "ON CONFLICT (account_id, external_id) DO UPDATE SET")
	assert.Contains(t, query, "nama = EXCLUDED.nama")
	assert.Contains(t, query, "updated_at = now()")
	assert.Contains(t, query, "RETURNING (xmax = 0)")
	assert.Equal(t, []any{"acc-1", "42", "Drinks"}, args)
}

func TestBuildUpsertWritesEveryColumn(t *testing.T) {
	// Full overwrite: every manifest column appears in both the insert list
	// and the conflict assignment, absent values included.
	for _, family := range domain.Families {
		query, args := buildUpsert(family, "acc-1", "x", map[string]any{})

		require.Len(t, args, len(family.Fields)+2, family.Name)
		for i, arg := range args[2:] {
			assert.Nil(t, arg, "%s field %d", family.Name, i)
		}
		for _, field := range family.Fields {
			assert.Contains(t, query, fmt.Sprintf("%s = EXCLUDED.%s", field.Column, field.Column), family.Name)
		}
		assert.Contains(t, query, fmt.Sprintf("$%d", len(family.Fields)+2), family.Name)
	}
}

func TestFamilyTableDDL(t *testing.T) {
	produk := findFamily(t, "produk")
	ddl := familyTableDDL(produk)

	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS sync_products")
	assert.Contains(t, ddl, "account_id UUID NOT NULL REFERENCES sync_accounts (id)")
	assert.Contains(t, ddl, "external_id TEXT NOT NULL")
	assert.Contains(t, ddl, "stok NUMERIC")
	assert.Contains(t, ddl, "harga_jual NUMERIC")
	assert.Contains(t, ddl, "UNIQUE (account_id, external_id)")

	jam := findFamily(t, "settings-jam-operasional")
	assert.Contains(t, familyTableDDL(jam), "aktif BOOLEAN")
}
