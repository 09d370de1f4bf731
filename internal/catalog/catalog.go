// Package catalog holds the static category catalog: the fixed income and
// expense category sets together with their display labels, plus month names
// for period labels.
package catalog

import "financecontrol/internal/models"

// Option pairs a category value with its display label, in the order
// categories are presented to the user.
type Option struct {
	Value models.Category
	Label string
}

var incomeOptions = []Option{
	{models.CategorySalary, "Salary"},
	{models.CategoryFreelance, "Freelance"},
	{models.CategoryInvestments, "Investments"},
	{models.CategoryGifts, "Gifts"},
	{models.CategoryOtherIncome, "Other Income"},
}

var expenseOptions = []Option{
	{models.CategoryFood, "Food"},
	{models.CategoryTransport, "Transport"},
	{models.CategoryHousing, "Housing"},
	{models.CategoryBills, "Bills"},
	{models.CategoryHealth, "Health"},
	{models.CategoryEducation, "Education"},
	{models.CategoryEntertainment, "Entertainment"},
	{models.CategoryShopping, "Shopping"},
	{models.CategorySavingsTransfer, "Savings Transfer"},
	{models.CategoryOtherExpense, "Other Expense"},
}

var labels = func() map[models.Category]string {
	m := make(map[models.Category]string, len(incomeOptions)+len(expenseOptions))
	for _, opt := range incomeOptions {
		m[opt.Value] = opt.Label
	}
	for _, opt := range expenseOptions {
		m[opt.Value] = opt.Label
	}
	return m
}()

// IncomeOptions returns the income categories with labels in display order.
func IncomeOptions() []Option {
	out := make([]Option, len(incomeOptions))
	copy(out, incomeOptions)
	return out
}

// ExpenseOptions returns the expense categories with labels in display order.
func ExpenseOptions() []Option {
	out := make([]Option, len(expenseOptions))
	copy(out, expenseOptions)
	return out
}

// Label returns the display label for a category. Unknown categories fall
// back to their raw value.
func Label(c models.Category) string {
	if l, ok := labels[c]; ok {
		return l
	}
	return string(c)
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the display name for a 1-based month, or "" when the
// month is out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}
