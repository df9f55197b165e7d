package repos

import (
	"skuchat/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Create persists the order header and its line snapshot atomically.
// Orders are never updated after this.
func (r *OrderRepo) Create(o domain.Order) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO orders(id, session_id, transaction_id, subtotal_cents, tax_cents, total_cents, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?)
	`, o.ID, o.SessionID, o.TransactionID, o.SubtotalCents, o.TaxCents, o.TotalCents, o.CreatedAt); err != nil {
		return err
	}
	for i, l := range o.Lines {
		if _, err := tx.Exec(`
		  INSERT INTO order_lines(order_id, product_id, title, price_cents, sku, image, vendor, type, qty, position)
		  VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, o.ID, l.ID, l.Title, l.PriceCents, l.SKU, l.Image, l.Vendor, l.Type, l.Quantity, i+1); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *OrderRepo) Get(orderID string) (domain.Order, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
	  SELECT id, session_id, transaction_id, subtotal_cents, tax_cents, total_cents, created_at
	  FROM orders WHERE id = ?
	`, orderID); err != nil {
		return domain.Order{}, err
	}
	if err := r.db.Select(&o.Lines, `
	  SELECT product_id AS id, title, price_cents, sku, image, vendor, type, qty
	  FROM order_lines WHERE order_id = ?
	  ORDER BY position
	`, orderID); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

// ListBySession returns receipts for the current session, newest first.
func (r *OrderRepo) ListBySession(sessionID string) ([]domain.Order, error) {
	out := []domain.Order{}
	err := r.db.Select(&out, `
	  SELECT id, session_id, transaction_id, subtotal_cents, tax_cents, total_cents, created_at
	  FROM orders WHERE session_id = ?
	  ORDER BY datetime(created_at) DESC
	`, sessionID)
	return out, err
}
