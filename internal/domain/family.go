package domain

// FieldKind determines how a raw JSON value is coerced before it is written.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumeric
	FieldBool
)

// Field describes one column of a resource family: the JSON key the local
// application sends, the column it lands in, and whether the sync payload
// must carry it.
type Field struct {
	JSON     string
	Column   string
	Kind     FieldKind
	Required bool
}

// Family describes one resource family: the route slug the local application
// posts to, the table its rows live in, and its field manifest. The natural
// key (account_id, external_id) is shared by every family and is not part of
// the manifest.
type Family struct {
	Name   string
	Table  string
	Fields []Field
}

// RequiredFields returns the JSON keys the payload must carry, beyond email and id.
func (f Family) RequiredFields() []string {
	var keys []string
	for _, field := range f.Fields {
		if field.Required {
			keys = append(keys, field.JSON)
		}
	}
	return keys
}

func text(name string, required bool) Field {
	return Field{JSON: name, Column: name, Kind: FieldText, Required: required}
}

func numeric(name string) Field {
	return Field{JSON: name, Column: name, Kind: FieldNumeric}
}

func boolean(name string) Field {
	return Field{JSON: name, Column: name, Kind: FieldBool}
}

// Families lists every synced resource family. The order here is the order
// routes are registered and tables are created.
var Families = []Family{
	{
		Name:  "produk",
		Table: "sync_products",
		Fields: []Field{
			text("nama", false),
			numeric("stok"),
			numeric("harga_jual"),
			text("kategori_id", false),
			text("merek_id", false),
		},
	},
	{
		Name:  "kategori",
		Table: "sync_categories",
		Fields: []Field{
			text("nama", true),
		},
	},
	{
		Name:  "merek",
		Table: "sync_brands",
		Fields: []Field{
			text("nama", true),
		},
	},
	{
		Name:  "metode-pembayaran",
		Table: "sync_payment_methods",
		Fields: []Field{
			text("nama_metode", true),
			text("no_rekening", false),
			text("atas_nama", false),
		},
	},
	{
		Name:  "order-setting",
		Table: "sync_order_settings",
		Fields: []Field{
			text("setting_key", true),
			text("setting_value", false),
		},
	},
	{
		Name:  "pembelian",
		Table: "sync_purchases",
		Fields: []Field{
			text("tanggal", true),
		},
	},
	{
		Name:  "settings-toko",
		Table: "sync_store_settings",
		Fields: []Field{
			text("nama_toko", true),
			text("jenis_usaha", false),
			text("deskripsi", false),
			text("alamat", false),
			text("no_telepon", false),
		},
	},
	{
		Name:  "settings-jam-operasional",
		Table: "sync_operating_hours",
		Fields: []Field{
			text("hari", true),
			text("jam_buka", false),
			text("jam_tutup", false),
			boolean("aktif"),
		},
	},
	{
		Name:  "pesanan-online",
		Table: "sync_online_orders",
		Fields: []Field{
			text("nama", false),
			text("alamat_pengiriman", false),
			text("no_hp", false),
			numeric("jumlah_produk"),
			text("catatan_tambahan", false),
			text("status_order", true),
			text("tanggal_order", true),
			// Cross-references are stored verbatim; existence is never checked.
			text("metode_pembayaran_id", false),
			text("ref_no", false),
			text("bukti_transfer", false),
		},
	},
}
