package services_test

import (
	"testing"

	"skuchat/internal/repos"
	"skuchat/internal/services"
)

func TestCatalog_EmptyQueryReturnsAll(t *testing.T) {
	db := memdb(t)
	svc := services.NewCatalogService(repos.NewProductRepo(db))

	all, err := svc.Lookup("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) == 0 {
		t.Fatal("want full catalog for empty query")
	}

	spaced, err := svc.Lookup("   ")
	if err != nil {
		t.Fatal(err)
	}
	if len(spaced) != len(all) {
		t.Fatalf("blank query should match empty query: %d vs %d", len(spaced), len(all))
	}
}

func TestCatalog_SubstringMatchTitleOrSKU(t *testing.T) {
	db := memdb(t)
	svc := services.NewCatalogService(repos.NewProductRepo(db))

	// Case-insensitive title substring.
	hits, err := svc.Lookup("BIKINI")
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) == 0 {
		t.Fatal("want title matches for BIKINI")
	}
	for _, p := range hits {
		if p.Type != "Bikini" {
			t.Fatalf("unexpected hit %+v", p)
		}
	}

	// SKU substring.
	hits, err = svc.Lookup("db341")
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].SKU != "DB341-ZEB-0" {
		t.Fatalf("want the DB341 SKU, got %+v", hits)
	}

	// No match.
	hits, err = svc.Lookup("zzzz-nothing")
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 0 {
		t.Fatalf("want no hits, got %+v", hits)
	}
}
