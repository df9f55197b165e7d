package money

import "testing"

func TestFromString(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
		ok   bool
	}{
		{"12.99", 1299, true},
		{"5", 500, true},
		{"0.5", 50, true},
		{"0.05", 5, true},
		{"129.99", 12999, true},
		{"", 0, false},
		{"-1.00", 0, false},
		{"1.999", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, err := FromString(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("FromString(%q) err=%v, want ok=%v", tc.in, err, tc.ok)
		}
		if err == nil && got != tc.want {
			t.Fatalf("FromString(%q)=%d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	if s := Cents(2550).String(); s != "25.50" {
		t.Fatalf("got %q", s)
	}
	if s := Cents(5).String(); s != "0.05" {
		t.Fatalf("got %q", s)
	}
	if s := Cents(-1299).String(); s != "-12.99" {
		t.Fatalf("got %q", s)
	}
}

func TestPercent(t *testing.T) {
	// 8% of 25.50 is 2.04 exactly.
	if got := Cents(2550).Percent(800); got != 204 {
		t.Fatalf("got %d, want 204", got)
	}
	// Rounds half up: 8% of 0.06 = 0.0048 -> 0.00? 0.48 cents rounds to 0.
	if got := Cents(6).Percent(800); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	if got := Cents(63).Percent(800); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestMulNoDrift(t *testing.T) {
	// 1000 lines at 0.10 each must total exactly 100.00.
	var total Cents
	for i := 0; i < 1000; i++ {
		total += Cents(10).Mul(1)
	}
	if total != 10000 {
		t.Fatalf("got %d, want 10000", total)
	}
}
