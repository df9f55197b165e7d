package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"skuchat/internal/domain"
	"skuchat/internal/repos"
	"skuchat/internal/validate"

	"github.com/google/uuid"
)

type CheckoutStatus string

const (
	CheckoutIdle       CheckoutStatus = "IDLE"
	CheckoutValidating CheckoutStatus = "VALIDATING"
	CheckoutCharging   CheckoutStatus = "CHARGING"
	CheckoutSucceeded  CheckoutStatus = "SUCCEEDED"
	CheckoutFailed     CheckoutStatus = "FAILED"
)

func (s CheckoutStatus) IsTerminal() bool {
	return s == CheckoutSucceeded || s == CheckoutFailed
}

func (s CheckoutStatus) String() string { return string(s) }

// TaxBasisPoints is the flat tax applied on the checkout summary.
const TaxBasisPoints = 800 // 8%

// CheckoutService runs the cart through validation and the one-shot
// charge. The at-most-one-in-flight-charge guard lives here, not in the
// rendering layer, so it holds no matter how the submit is triggered.
type CheckoutService struct {
	Carts         *CartService
	Orders        *repos.OrderRepo
	Processor     Processor
	ChargeTimeout time.Duration

	mu     sync.Mutex
	states map[string]CheckoutStatus
}

func NewCheckoutService(carts *CartService, orders *repos.OrderRepo, proc Processor, chargeTimeout time.Duration) *CheckoutService {
	if chargeTimeout <= 0 {
		chargeTimeout = 5 * time.Second
	}
	return &CheckoutService{
		Carts:         carts,
		Orders:        orders,
		Processor:     proc,
		ChargeTimeout: chargeTimeout,
		states:        map[string]CheckoutStatus{},
	}
}

// Status reports the pipeline state for a session. Sessions with no
// submit in flight are Idle.
func (s *CheckoutService) Status(sessionID string) CheckoutStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[sessionID]; ok {
		return st
	}
	return CheckoutIdle
}

func (s *CheckoutService) begin(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.states[sessionID]; ok {
		return ErrChargeInFlight
	}
	s.states[sessionID] = CheckoutIdle
	return nil
}

func (s *CheckoutService) transition(sessionID string, st CheckoutStatus) {
	s.mu.Lock()
	s.states[sessionID] = st
	s.mu.Unlock()
}

func (s *CheckoutService) end(sessionID string) {
	s.mu.Lock()
	delete(s.states, sessionID)
	s.mu.Unlock()
}

// Submit takes the session's cart through the checkout pipeline. On
// success the cart is cleared before the order is returned, so a caller
// observing success always finds an empty cart. On any failure the cart
// is untouched and the pipeline returns to Idle for retry. The payment
// details are zeroed before Submit returns, whatever the outcome.
func (s *CheckoutService) Submit(ctx context.Context, sessionID string, details domain.PaymentDetails) (domain.Order, error) {
	defer details.Zero()

	if err := s.begin(sessionID); err != nil {
		return domain.Order{}, err
	}
	defer s.end(sessionID)

	cv, err := s.Carts.View(sessionID)
	if err != nil {
		return domain.Order{}, err
	}
	if cv.Empty() {
		// Rejected before Validating is ever entered.
		return domain.Order{}, ErrEmptyCart
	}

	s.transition(sessionID, CheckoutValidating)
	if errs := validate.PaymentFields(details.CardName, details.CardNumber, details.Expiry, details.CVV); len(errs) > 0 {
		return domain.Order{}, &ValidationError{Fields: errs}
	}

	subtotal := cv.SubtotalCents
	tax := subtotal.Percent(TaxBasisPoints)

	s.transition(sessionID, CheckoutCharging)
	chargeCtx, cancel := context.WithTimeout(ctx, s.ChargeTimeout)
	defer cancel()
	res, err := s.Processor.Charge(chargeCtx, ChargeRequest{SessionID: sessionID, AmountCents: subtotal + tax})
	if err != nil {
		s.transition(sessionID, CheckoutFailed)
		return domain.Order{}, fmt.Errorf("%w: %v", ErrChargeFailed, err)
	}

	order := domain.Order{
		ID:            newOrderID(),
		SessionID:     sessionID,
		TransactionID: res.TransactionID,
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
		CreatedAt:     res.ChargedAt.Format(time.RFC3339),
		Lines:         cv.Lines,
	}
	if err := s.Orders.Create(order); err != nil {
		s.transition(sessionID, CheckoutFailed)
		return domain.Order{}, fmt.Errorf("%w: recording order: %v", ErrChargeFailed, err)
	}
	if err := s.Carts.Clear(sessionID); err != nil {
		// Success must never be signaled with a non-empty cart.
		s.transition(sessionID, CheckoutFailed)
		return domain.Order{}, fmt.Errorf("%w: clearing cart: %v", ErrChargeFailed, err)
	}

	s.transition(sessionID, CheckoutSucceeded)
	return order, nil
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
