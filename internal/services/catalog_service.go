package services

import (
	"strings"

	"skuchat/internal/domain"
	"skuchat/internal/repos"

	"golang.org/x/sync/singleflight"
)

// CatalogService answers product lookups. Lookups are deterministic and
// side-effect free; concurrent identical queries are collapsed.
type CatalogService struct {
	Prods *repos.ProductRepo
	sfg   singleflight.Group
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// Lookup returns the full catalog for an empty query, otherwise records
// whose title or SKU contains the query, case-insensitively.
func (s *CatalogService) Lookup(query string) ([]domain.Product, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	v, err, _ := s.sfg.Do("q:"+q, func() (interface{}, error) {
		if q == "" {
			return s.Prods.All()
		}
		return s.Prods.Search(q)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}
