package domain

import "skuchat/internal/money"

// Order is the write-once receipt created by a successful charge.
type Order struct {
	ID            string      `db:"id"`
	SessionID     string      `db:"session_id"`
	TransactionID string      `db:"transaction_id"`
	SubtotalCents money.Cents `db:"subtotal_cents"`
	TaxCents      money.Cents `db:"tax_cents"`
	TotalCents    money.Cents `db:"total_cents"`
	CreatedAt     string      `db:"created_at"`

	Lines []CartLine `db:"-"`
}

func (o Order) Subtotal() string { return o.SubtotalCents.String() }
func (o Order) Tax() string      { return o.TaxCents.String() }
func (o Order) Total() string    { return o.TotalCents.String() }
