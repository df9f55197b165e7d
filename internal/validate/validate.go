package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reExpiry = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	reCVV    = regexp.MustCompile(`^[0-9]{3,4}$`)
	reDigits = regexp.MustCompile(`^[0-9]+$`)
	reQ      = regexp.MustCompile(`^[A-Za-z0-9 _'\-$.]{1,50}$`)
	reID     = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// CardName requires at least 3 characters after trimming.
func CardName(s string) bool {
	return len(strings.TrimSpace(s)) >= 3
}

// CardNumber strips spaces and dashes, then requires 16-19 digits.
func CardNumber(s string) bool {
	stripped := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)
	if len(stripped) < 16 || len(stripped) > 19 {
		return false
	}
	return reDigits.MatchString(stripped)
}

// Expiry requires MM/YY with MM in 01-12.
func Expiry(s string) bool { return reExpiry.MatchString(strings.TrimSpace(s)) }

// CVV requires 3-4 digits.
func CVV(s string) bool { return reCVV.MatchString(s) }

// PaymentFields checks all card fields and returns per-field messages.
// An empty map means the details are valid.
func PaymentFields(name, number, expiry, cvv string) map[string]string {
	errs := map[string]string{}
	if !CardName(name) {
		errs["cardName"] = "Name must be at least 3 characters"
	}
	if !CardNumber(number) {
		errs["cardNumber"] = "Card number must be 16-19 digits"
	}
	if !Expiry(expiry) {
		errs["expiryDate"] = "Expiry date must be in MM/YY format"
	}
	if !CVV(cvv) {
		errs["cvv"] = "CVV must be 3-4 digits"
	}
	return errs
}

// Q validates a search query: trims, enforces allowed characters and max length.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// ID validates a simple resource identifier (product ids / SKUs).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Qty parses a quantity form value. Invalid input maps to 0 so that the
// cart's set-quantity semantics treat it as a removal request.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	if n > 50 {
		return 50 // clamp to avoid abuse
	}
	return n
}
