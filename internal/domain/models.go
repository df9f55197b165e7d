package domain

import "skuchat/internal/money"

// Product is an immutable catalog record. ID equals the variant SKU.
type Product struct {
	ID         string      `db:"id"`
	Title      string      `db:"title"`
	PriceCents money.Cents `db:"price_cents"`
	SKU        string      `db:"sku"`
	Image      string      `db:"image"`
	Vendor     string      `db:"vendor"`
	Type       string      `db:"type"`
}

// Price renders the unit price for display, e.g. "129.99".
func (p Product) Price() string { return p.PriceCents.String() }

// CartLine is a product snapshot plus a quantity of at least one.
// A cart holds at most one line per product id.
type CartLine struct {
	Product
	Quantity int `db:"qty"`
}

func (l CartLine) SubtotalCents() money.Cents { return l.PriceCents.Mul(l.Quantity) }
func (l CartLine) Subtotal() string           { return l.SubtotalCents().String() }
