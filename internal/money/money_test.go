package money_test

import (
	"errors"
	"math"
	"testing"

	"financecontrol/internal/money"
)

func TestParseCents(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cases := []struct {
			in   string
			want int64
		}{
			{"12.34", 1234},
			{"12,34", 1234},
			{"0", 0},
			{"0.00", 0},
			{"5", 500},
			{"12.3", 1230},
			{".5", 50},
			{"7.", 700},
			{" 12.34 ", 1234},
			{"0.005", 1},   // half-up on the third decimal
			{"1.004", 100}, // below half rounds down
			{"0.999", 100},
			{"1234567.89", 123456789},
			{"92233720368547758.07", math.MaxInt64},
		}
		for _, c := range cases {
			got, err := money.ParseCents(c.in)
			if err != nil {
				t.Errorf("ParseCents(%q): unexpected error %v", c.in, err)
				continue
			}
			if got != c.want {
				t.Errorf("ParseCents(%q): expected %d, got %d", c.in, c.want, got)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		cases := []string{
			"", " ", ".", "-1", "+1", "1.2.3", "abc", "12a", "1,2,3", "12.3x", "1e5",
			"92233720368547759",    // overflows when scaled to cents
			"92233720368547758.08", // whole part fits, cents push it over
			"92233720368547758.99",
		}
		for _, in := range cases {
			if _, err := money.ParseCents(in); !errors.Is(err, money.ErrInvalidAmount) {
				t.Errorf("ParseCents(%q): expected ErrInvalidAmount, got %v", in, err)
			}
		}
	})
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{1234, "12.34"},
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{-1234, "-12.34"},
		{123456789, "1234567.89"},
	}
	for _, c := range cases {
		if got := money.FormatCents(c.in); got != c.want {
			t.Errorf("FormatCents(%d): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 12345, 1000000} {
		got, err := money.ParseCents(money.FormatCents(cents))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", cents, err)
		}
		if got != cents {
			t.Errorf("round trip of %d produced %d", cents, got)
		}
	}
}
