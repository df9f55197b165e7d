package services_test

import (
	"context"
	"testing"
	"time"

	"skuchat/internal/repos"
	"skuchat/internal/services"
)

// End to end: find a product in the seeded catalog, add it twice,
// check out, and read back the receipt.
func TestStorefrontFlow_SearchAddCheckout(t *testing.T) {
	db := memdb(t)
	prodRepo := repos.NewProductRepo(db)
	catalog := services.NewCatalogService(prodRepo)
	carts := services.NewCartService(repos.NewCartRepo(db), prodRepo)
	orders := repos.NewOrderRepo(db)
	checkout := services.NewCheckoutService(carts, orders,
		&services.SimulatedProcessor{Delay: time.Millisecond, Refusals: services.ApproveAll{}}, time.Second)

	sid := "flow-session"

	hits, err := catalog.Lookup("zebra print bikini top")
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 {
		t.Fatalf("want 1 hit, got %d", len(hits))
	}

	for i := 0; i < 2; i++ {
		if err := carts.Add(sid, hits[0].ID); err != nil {
			t.Fatal(err)
		}
	}

	cv, err := carts.View(sid)
	if err != nil {
		t.Fatal(err)
	}
	if cv.SubtotalCents != hits[0].PriceCents.Mul(2) {
		t.Fatalf("bad subtotal %d", cv.SubtotalCents)
	}

	order, err := checkout.Submit(context.Background(), sid, validDetails())
	if err != nil {
		t.Fatal(err)
	}

	got, err := orders.Get(order.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Lines) != 1 || got.Lines[0].Quantity != 2 {
		t.Fatalf("bad receipt lines: %+v", got.Lines)
	}
	if got.TotalCents != order.TotalCents {
		t.Fatalf("receipt total drifted: %d vs %d", got.TotalCents, order.TotalCents)
	}

	cv, _ = carts.View(sid)
	if !cv.Empty() {
		t.Fatal("cart must be empty after a successful checkout")
	}
}
