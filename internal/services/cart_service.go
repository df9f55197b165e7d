package services

import (
	"skuchat/internal/domain"
	"skuchat/internal/money"
	"skuchat/internal/repos"
)

// CartService is the single owner of cart mutations. Every mutation is
// persisted synchronously before it returns, so a reload never observes
// a cart older than the last completed change.
type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// Add puts one more unit of the product in the cart: an existing line is
// incremented by exactly one, otherwise a new line with quantity one is
// appended.
func (s *CartService) Add(sessionID, productID string) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	p, err := s.Prods.Get(productID)
	if err != nil {
		return err
	}
	return s.Carts.AddOne(cartID, p)
}

// SetQuantity sets a line's quantity to an absolute value. Zero or less
// removes the line; an unknown product id is a no-op. The quantity
// stepper in the cart view posts current±1 through here.
func (s *CartService) SetQuantity(sessionID, productID string, qty int) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Carts.SetQuantity(cartID, productID, qty)
}

func (s *CartService) Remove(sessionID, productID string) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Carts.Remove(cartID, productID)
}

func (s *CartService) Clear(sessionID string) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Carts.Clear(cartID)
}

type CartView struct {
	Lines         []domain.CartLine
	SubtotalCents money.Cents
}

func (v CartView) Empty() bool      { return len(v.Lines) == 0 }
func (v CartView) Count() int       { return len(v.Lines) }
func (v CartView) Subtotal() string { return v.SubtotalCents.String() }

// View returns the cart in first-add order with the total recomputed
// from the lines. The total is never stored anywhere it could drift.
func (s *CartService) View(sessionID string) (CartView, error) {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return CartView{}, err
	}
	lines, err := s.Carts.Lines(cartID)
	if err != nil {
		return CartView{}, err
	}
	var total money.Cents
	for _, l := range lines {
		total += l.SubtotalCents()
	}
	return CartView{Lines: lines, SubtotalCents: total}, nil
}
