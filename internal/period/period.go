// Package period partitions transactions and budgets by calendar month.
package period

import (
	"fmt"
	"time"

	"financecontrol/internal/models"
)

// Period is a (month, year) partition key. Month is 1-12, year a four-digit
// calendar year.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// FromDate returns the period a date falls into.
func FromDate(d time.Time) Period {
	return Period{Month: int(d.Month()), Year: d.Year()}
}

// Current returns the period of the current wall-clock date.
func Current() Period {
	return FromDate(time.Now())
}

// Valid reports whether the period holds a real month and a four-digit year.
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= 1000 && p.Year <= 9999
}

// String renders the period as "YYYY-MM".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Transactions returns all transactions whose cached (month, year) equals p.
// An invalid period matches nothing rather than failing; no caller should
// produce such values, but the function must not crash on them.
func Transactions(ts []models.Transaction, p Period) []models.Transaction {
	if !p.Valid() {
		return nil
	}
	var out []models.Transaction
	for _, t := range ts {
		if t.Month == p.Month && t.Year == p.Year {
			out = append(out, t)
		}
	}
	return out
}

// Budgets returns all budgets whose explicit (month, year) equals p.
func Budgets(bs []models.Budget, p Period) []models.Budget {
	if !p.Valid() {
		return nil
	}
	var out []models.Budget
	for _, b := range bs {
		if b.Month == p.Month && b.Year == p.Year {
			out = append(out, b)
		}
	}
	return out
}

// Window returns n consecutive periods ending at end, oldest first. Month
// arithmetic carries across year boundaries, e.g. a window ending at
// 2024-02 includes 2023 months.
func Window(end Period, n int) []Period {
	if n <= 0 {
		return nil
	}
	out := make([]Period, 0, n)
	for i := n - 1; i >= 0; i-- {
		d := time.Date(end.Year, time.Month(end.Month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		out = append(out, FromDate(d))
	}
	return out
}
