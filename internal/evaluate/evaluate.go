// Package evaluate compares aggregated spend against user-defined budgets
// and financial goals.
package evaluate

import (
	"financecontrol/internal/aggregate"
	"financecontrol/internal/models"
)

// BudgetStatus compares one budget against the amount spent in its period.
// Values are cents; ratios are fractions, not percentages.
type BudgetStatus struct {
	Budget    models.Budget `json:"budget"`
	Spent     int64         `json:"spent"`
	Limit     int64         `json:"limit"`
	Remaining int64         `json:"remaining"`
	// Ratio is the raw spent/limit quotient, so callers can tell "exactly
	// at limit" from "over limit". DisplayRatio is clamped to [0, 1] for
	// progress bars.
	Ratio        float64 `json:"ratio"`
	DisplayRatio float64 `json:"display_ratio"`
	Overspent    bool    `json:"overspent"`
}

// Status evaluates spent against the budget's monthly limit. Remaining may
// go negative. A zero limit marks a disabled/placeholder budget: its ratio
// is 0 and it is never overspent.
func Status(b models.Budget, spent int64) BudgetStatus {
	s := BudgetStatus{
		Budget:    b,
		Spent:     spent,
		Limit:     b.MonthlyLimit,
		Remaining: b.MonthlyLimit - spent,
	}
	if b.MonthlyLimit > 0 {
		s.Ratio = float64(spent) / float64(b.MonthlyLimit)
		s.DisplayRatio = s.Ratio
		if s.DisplayRatio > 1 {
			s.DisplayRatio = 1
		}
		if s.DisplayRatio < 0 {
			s.DisplayRatio = 0
		}
		s.Overspent = spent > b.MonthlyLimit
	}
	return s
}

// StatusAll evaluates every budget against the expense breakdown of the
// given transactions. Both slices must already be filtered to the same
// period.
func StatusAll(bs []models.Budget, ts []models.Transaction) []BudgetStatus {
	spentByCategory := make(map[models.Category]int64)
	for _, ct := range aggregate.ByCategory(ts, models.TransactionTypeExpense) {
		spentByCategory[ct.Category] = ct.Total
	}

	out := make([]BudgetStatus, 0, len(bs))
	for _, b := range bs {
		out = append(out, Status(b, spentByCategory[b.Category]))
	}
	return out
}

// Alerts returns the statuses worth surfacing to the user: overspent budgets
// that have alerts enabled.
func Alerts(statuses []BudgetStatus) []BudgetStatus {
	var out []BudgetStatus
	for _, s := range statuses {
		if s.Overspent && s.Budget.AlertsEnabled {
			out = append(out, s)
		}
	}
	return out
}

// GoalKind distinguishes how a goal target is met.
type GoalKind string

const (
	// Accumulation goals (income target, savings target) are achieved at or
	// above target. A zero target means no goal is set; callers suppress
	// display, and the ratio is a well-defined 0.
	Accumulation GoalKind = "accumulation"
	// Ceiling goals (expense limit) are achieved at or below target. A zero
	// target is a valid, strict ceiling: any spend at all fails it. This
	// asymmetry with accumulation goals is deliberate.
	Ceiling GoalKind = "ceiling"
)

// GoalProgress reports how far along one goal is.
type GoalProgress struct {
	Current  int64   `json:"current"`
	Target   int64   `json:"target"`
	Ratio    float64 `json:"ratio"`
	Achieved bool    `json:"achieved"`
}

// Progress evaluates actual against target for the given goal kind.
func Progress(target, actual int64, kind GoalKind) GoalProgress {
	p := GoalProgress{Current: actual, Target: target}
	if target > 0 {
		p.Ratio = float64(actual) / float64(target)
	}
	switch kind {
	case Ceiling:
		p.Achieved = actual <= target
	default:
		p.Achieved = actual >= target
	}
	return p
}

// GoalsReport evaluates the three standard goals against one month's summary.
type GoalsReport struct {
	Income  GoalProgress `json:"income"`
	Expense GoalProgress `json:"expense"`
	Savings GoalProgress `json:"savings"`
}

// Goals builds a GoalsReport from the user's goal set and a monthly summary.
// The savings input is potential savings clamped at zero; the evaluator
// never sees a negative savings figure.
func Goals(g models.FinancialGoals, s aggregate.Summary) GoalsReport {
	return GoalsReport{
		Income:  Progress(g.MonthlyIncomeTarget, s.Income, Accumulation),
		Expense: Progress(g.MonthlyExpenseLimit, s.Expenses, Ceiling),
		Savings: Progress(g.SavingsTarget, aggregate.PotentialSavings(s), Accumulation),
	}
}
