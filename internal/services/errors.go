package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrEmptyCart rejects a checkout submit before any validation runs.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

	// ErrChargeInFlight rejects a second submit while a charge is pending.
	// The duplicate is dropped, never queued.
	ErrChargeInFlight = errors.New("a payment is already being processed")

	// ErrChargeFailed wraps every processor-level fault, including
	// timeouts and malformed responses. The cart stays intact.
	ErrChargeFailed = errors.New("payment failed")
)

// ValidationError carries field-level messages from payment validation.
// It never mutates the cart and the pipeline can be re-entered at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("invalid payment details: %s", strings.Join(keys, ", "))
}
