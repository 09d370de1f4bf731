package models

import "fmt"

// Budget caps spending for one expense category in one calendar month.
// Each calendar month needs its own Budget row; Month and Year are explicit
// here, not derived. At most one budget may exist per
// (owner, category, month, year).
type Budget struct {
	ID            string   `json:"id"`
	Owner         string   `json:"owner"`
	Category      Category `json:"category" validate:"required,expense_category"`
	MonthlyLimit  int64    `json:"monthly_limit" validate:"min=0"`
	Month         int      `json:"month" validate:"min=1,max=12"`
	Year          int      `json:"year" validate:"min=1000,max=9999"`
	AlertsEnabled bool     `json:"alerts_enabled"`
}

// Key returns the uniqueness key for the budget within one owner's ledger.
func (b *Budget) Key() string {
	return fmt.Sprintf("%s/%04d-%02d", b.Category, b.Year, b.Month)
}
