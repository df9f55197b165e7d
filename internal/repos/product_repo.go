package repos

import (
	"skuchat/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) All() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id, title, price_cents, sku, image, vendor, type
	  FROM products
	  ORDER BY rowid
	`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, title, price_cents, sku, image, vendor, type
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

// Search does a case-insensitive substring match on title or SKU.
func (r *ProductRepo) Search(q string) ([]domain.Product, error) {
	out := []domain.Product{}
	like := "%" + q + "%"
	err := r.db.Select(&out, `
	  SELECT id, title, price_cents, sku, image, vendor, type
	  FROM products
	  WHERE LOWER(title) LIKE LOWER(?) OR LOWER(sku) LIKE LOWER(?)
	  ORDER BY rowid
	`, like, like)
	return out, err
}
