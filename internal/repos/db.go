package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the demo catalog if the DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Catalog. id doubles as the variant SKU.
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  price_cents INTEGER NOT NULL CHECK (price_cents >= 0),
  sku TEXT NOT NULL,
  image TEXT NOT NULL DEFAULT '/placeholder.svg',
  vendor TEXT NOT NULL DEFAULT '',
  type TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_title ON products(LOWER(title));
CREATE INDEX IF NOT EXISTS idx_products_sku   ON products(LOWER(sku));

-- Carts, one per browser session.
CREATE TABLE IF NOT EXISTS carts(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);

-- Cart lines snapshot the product at add time. position preserves
-- first-add order. Duplicate product rows are tolerated here and
-- coalesced by the repo on read.
CREATE TABLE IF NOT EXISTS cart_lines(
  cart_id TEXT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL,
  title TEXT NOT NULL,
  price_cents INTEGER NOT NULL,
  sku TEXT NOT NULL,
  image TEXT NOT NULL DEFAULT '',
  vendor TEXT NOT NULL DEFAULT '',
  type TEXT NOT NULL DEFAULT '',
  qty INTEGER NOT NULL CHECK (qty >= 1),
  position INTEGER NOT NULL,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_cart_lines_cart ON cart_lines(cart_id);

-- Orders are write-once receipts.
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  session_id TEXT NOT NULL,
  transaction_id TEXT NOT NULL,
  subtotal_cents INTEGER NOT NULL,
  tax_cents INTEGER NOT NULL,
  total_cents INTEGER NOT NULL,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_session ON orders(session_id);

CREATE TABLE IF NOT EXISTS order_lines(
  order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL,
  title TEXT NOT NULL,
  price_cents INTEGER NOT NULL,
  sku TEXT NOT NULL,
  image TEXT NOT NULL DEFAULT '',
  vendor TEXT NOT NULL DEFAULT '',
  type TEXT NOT NULL DEFAULT '',
  qty INTEGER NOT NULL,
  position INTEGER NOT NULL,
  PRIMARY KEY (order_id, product_id)
);
`
	_, err := db.Exec(schema)
	return err
}

// seedIfEmpty loads a small demo catalog. Rows missing a title, SKU or
// price never make it in here, so downstream code can trust the records.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,title,price_cents,sku,image,vendor,type) VALUES
	  ('DB341-ZEB-0','Zebra Print Bikini Top',2499,'DB341-ZEB-0','products/DB341-ZEB-0.jpg','Sunsoaked','Bikini'),
	  ('DB342-ZEB-0','Zebra Print Bikini Bottom',1999,'DB342-ZEB-0','products/DB342-ZEB-0.jpg','Sunsoaked','Bikini'),
	  ('AC100-TOT-1','Canvas Beach Tote',3450,'AC100-TOT-1','products/AC100-TOT-1.jpg','Shoreline','Accessories'),
	  ('AC101-SUN-1','Retro Round Sunglasses',899,'AC101-SUN-1','products/AC101-SUN-1.jpg','Shoreline','Accessories'),
	  ('AC102-CLP-0','Shell Hair Clip Set',650,'AC102-CLP-0','/placeholder.svg','','Accessories'),
	  ('SW200-ONE-2','Classic One-Piece Swimsuit',5999,'SW200-ONE-2','products/SW200-ONE-2.jpg','Sunsoaked','Swimwear'),
	  ('SW201-TRK-2','Color Block Swim Trunks',2750,'SW201-TRK-2','products/SW201-TRK-2.jpg','Driftwood','Swimwear'),
	  ('CV310-SRG-0','Striped Sarong Cover-Up',2199,'CV310-SRG-0','/placeholder.svg','Driftwood','Cover-Up')`)
	return tx.Commit()
}
