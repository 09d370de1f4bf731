// Package money converts between user-facing decimal strings and the cent
// representation used everywhere inside the engine. Amounts are summed as
// integers so aggregation never drifts; two-decimal rounding happens only
// here, at the presentation boundary.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidAmount is returned for strings that are not a non-negative
// decimal quantity.
var ErrInvalidAmount = errors.New("invalid monetary amount")

// ParseCents converts a decimal string to cents with half-up rounding on the
// third decimal place. Both dot (12.34) and comma (12,34) separators are
// accepted. Negative values are rejected; zero is allowed (a zero budget
// limit is a valid placeholder).
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" && fracPart == "" {
		return 0, ErrInvalidAmount
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxWhole = math.MaxInt64 / 100
	if iv > maxWhole {
		return 0, ErrInvalidAmount
	}

	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	// iv*100 cannot overflow here, but adding the cents still can when iv
	// sits exactly at maxWhole.
	whole := iv * 100
	if fracCents > math.MaxInt64-whole {
		return 0, ErrInvalidAmount
	}
	return whole + fracCents, nil
}

// FormatCents renders cents as a plain two-decimal string, e.g. 1234 -> "12.34".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
