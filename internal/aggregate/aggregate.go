// Package aggregate reduces transaction sets into summaries, category
// breakdowns and multi-period trend series. All functions are pure: they
// take an already period-filtered slice and hold no state.
package aggregate

import (
	"financecontrol/internal/models"
	"financecontrol/internal/period"
)

// Summary is the income/expense reduction of one transaction set. Values are
// cents.
type Summary struct {
	Income   int64 `json:"income"`
	Expenses int64 `json:"expenses"`
	Balance  int64 `json:"balance"`
	Count    int   `json:"count"`
}

// Summarize totals a transaction set. An empty set sums to the zero Summary.
func Summarize(ts []models.Transaction) Summary {
	var s Summary
	for _, t := range ts {
		switch t.Type {
		case models.TransactionTypeIncome:
			s.Income += t.Amount
		case models.TransactionTypeExpense:
			s.Expenses += t.Amount
		}
	}
	s.Balance = s.Income - s.Expenses
	s.Count = len(ts)
	return s
}

// CategoryTotal is one category's summed amount within a breakdown.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    int64           `json:"total"`
}

// ByCategory groups amounts of the given type by category. Ordering follows
// the first appearance of each category in the input, not magnitude; callers
// needing sorted output sort separately.
func ByCategory(ts []models.Transaction, typ models.TransactionType) []CategoryTotal {
	var out []CategoryTotal
	index := make(map[models.Category]int)
	for _, t := range ts {
		if t.Type != typ {
			continue
		}
		i, seen := index[t.Category]
		if !seen {
			index[t.Category] = len(out)
			out = append(out, CategoryTotal{Category: t.Category})
			i = len(out) - 1
		}
		out[i].Total += t.Amount
	}
	return out
}

// PeriodSummary is one period's summary within a trend series.
type PeriodSummary struct {
	Period period.Period `json:"period"`
	Summary
}

// Trend summarizes each supplied period, preserving input order. The caller
// supplies the periods (oldest first for rolling-window displays); the
// engine performs no date arithmetic here.
func Trend(ts []models.Transaction, periods []period.Period) []PeriodSummary {
	out := make([]PeriodSummary, 0, len(periods))
	for _, p := range periods {
		out = append(out, PeriodSummary{
			Period:  p,
			Summary: Summarize(period.Transactions(ts, p)),
		})
	}
	return out
}

// RunningBalance returns the cumulative balance across a trend series, in
// the same order.
func RunningBalance(series []PeriodSummary) []int64 {
	out := make([]int64, len(series))
	var acc int64
	for i, ps := range series {
		acc += ps.Balance
		out[i] = acc
	}
	return out
}

// PotentialSavings is the period's income minus expenses, clamped at zero.
// This is the input the savings goal is evaluated against.
func PotentialSavings(s Summary) int64 {
	if s.Balance < 0 {
		return 0
	}
	return s.Balance
}
