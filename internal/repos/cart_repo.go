package repos

import (
	"time"

	"skuchat/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) EnsureCart(sessionID string) (string, error) {
	var cartID string
	if err := r.db.Get(&cartID, `SELECT id FROM carts WHERE session_id = ?`, sessionID); err == nil {
		return cartID, nil
	}
	_, err := r.db.Exec(`INSERT INTO carts(id,session_id,updated_at) VALUES(?,?,?)`,
		sessionID, sessionID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

// Lines returns the cart in first-add order. If persisted storage holds
// more than one row for a product id, the duplicates are coalesced
// deterministically (quantities summed, first-seen order kept) and the
// stored rows rewritten.
func (r *CartRepo) Lines(cartID string) ([]domain.CartLine, error) {
	rows := []domain.CartLine{}
	if err := r.db.Select(&rows, `
	  SELECT product_id AS id, title, price_cents, sku, image, vendor, type, qty
	  FROM cart_lines
	  WHERE cart_id = ?
	  ORDER BY position, rowid
	`, cartID); err != nil {
		return nil, err
	}

	seen := map[string]int{}
	merged := rows[:0]
	dirty := false
	for _, l := range rows {
		if i, ok := seen[l.ID]; ok {
			merged[i].Quantity += l.Quantity
			dirty = true
			continue
		}
		seen[l.ID] = len(merged)
		merged = append(merged, l)
	}
	if dirty {
		if err := r.rewrite(cartID, merged); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// AddOne increments an existing line by one, or appends a new line with
// quantity one at the end of the cart.
func (r *CartRepo) AddOne(cartID string, p domain.Product) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.Exec(`
	  UPDATE cart_lines SET qty = qty + 1, updated_at = ?
	  WHERE cart_id = ? AND product_id = ?
	`, now, cartID, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	_, err = r.db.Exec(`
	  INSERT INTO cart_lines(cart_id, product_id, title, price_cents, sku, image, vendor, type, qty, position, updated_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?, 1,
	    COALESCE((SELECT MAX(position) FROM cart_lines WHERE cart_id = ?), 0) + 1, ?)
	`, cartID, p.ID, p.Title, p.PriceCents, p.SKU, p.Image, p.Vendor, p.Type, cartID, now)
	return err
}

// SetQuantity sets the line's quantity exactly. qty <= 0 removes the
// line. Unknown product ids are a no-op; a line is never created here.
func (r *CartRepo) SetQuantity(cartID, productID string, qty int) error {
	if qty <= 0 {
		return r.Remove(cartID, productID)
	}
	_, err := r.db.Exec(`
	  UPDATE cart_lines SET qty = ?, updated_at = ?
	  WHERE cart_id = ? AND product_id = ?
	`, qty, time.Now().UTC().Format(time.RFC3339), cartID, productID)
	return err
}

func (r *CartRepo) Remove(cartID, productID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_lines WHERE cart_id = ? AND product_id = ?`, cartID, productID)
	return err
}

func (r *CartRepo) Clear(cartID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_lines WHERE cart_id = ?`, cartID)
	return err
}

func (r *CartRepo) rewrite(cartID string, lines []domain.CartLine) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM cart_lines WHERE cart_id = ?`, cartID); err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for i, l := range lines {
		if _, err := tx.Exec(`
		  INSERT INTO cart_lines(cart_id, product_id, title, price_cents, sku, image, vendor, type, qty, position, updated_at)
		  VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, cartID, l.ID, l.Title, l.PriceCents, l.SKU, l.Image, l.Vendor, l.Type, l.Quantity, i+1, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}
