package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamiliesAreUnique(t *testing.T) {
	names := make(map[string]bool)
	tables := make(map[string]bool)
	for _, f := range Families {
		assert.False(t, names[f.Name], "duplicate family name %s", f.Name)
		assert.False(t, tables[f.Table], "duplicate table %s", f.Table)
		names[f.Name] = true
		tables[f.Table] = true
	}
	assert.Len(t, Families, 9)
}

func TestFamilyRequiredFields(t *testing.T) {
	want := map[string][]string{
		"produk":                   nil,
		"kategori":                 {"nama"},
		"merek":                    {"nama"},
		"metode-pembayaran":        {"nama_metode"},
		"order-setting":            {"setting_key"},
		"pembelian":                {"tanggal"},
		"settings-toko":            {"nama_toko"},
		"settings-jam-operasional": {"hari"},
		"pesanan-online":           {"status_order", "tanggal_order"},
	}

	for _, f := range Families {
		expected, ok := want[f.Name]
		require.True(t, ok, "unexpected family %s", f.Name)
		assert.Equal(t, expected, f.RequiredFields(), f.Name)
	}
}

func TestFieldColumnsMatchJSONKeys(t *testing.T) {
	// Columns mirror the payload keys; the body key is never reserved.
	for _, f := range Families {
		for _, field := range f.Fields {
			assert.Equal(t, field.JSON, field.Column)
			assert.NotEqual(t, "email", field.JSON)
			assert.NotEqual(t, "id", field.JSON)
		}
	}
}
