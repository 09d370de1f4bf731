package models

// FinancialGoals is the user's active goal set. There is one per user, not
// period-scoped, and it is overwritten wholesale on each save.
//
// A zero income or savings target means "no goal set". A zero expense limit
// is a valid ceiling of zero, not an unset goal; any spend at all fails it.
type FinancialGoals struct {
	MonthlyIncomeTarget int64 `json:"monthly_income_target" validate:"min=0"`
	MonthlyExpenseLimit int64 `json:"monthly_expense_limit" validate:"min=0"`
	SavingsTarget       int64 `json:"savings_target" validate:"min=0"`
}

// IsZero reports whether no goal of any kind has been configured.
func (g FinancialGoals) IsZero() bool {
	return g.MonthlyIncomeTarget == 0 && g.MonthlyExpenseLimit == 0 && g.SavingsTarget == 0
}
