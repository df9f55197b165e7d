// Package money holds currency amounts as integer minor units so that
// summing many cart lines never accumulates binary rounding drift.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is a currency amount in minor units.
type Cents int64

// FromString parses a decimal amount such as "12.99" or "5".
// At most two decimal places; negative amounts are rejected.
func FromString(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	whole, frac, _ := strings.Cut(s, ".")
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if frac == "" {
		return Cents(w * 100), nil
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("invalid amount %q: more than two decimals", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return Cents(w*100 + f), nil
}

// Mul scales the amount by an integral quantity.
func (c Cents) Mul(qty int) Cents { return c * Cents(qty) }

// Percent returns the given basis points of the amount, rounded half up.
// Percent(800) is an 8% tax line.
func (c Cents) Percent(bp int) Cents {
	return Cents((int64(c)*int64(bp) + 5000) / 10000)
}

// String formats with two decimals, e.g. "25.50".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
