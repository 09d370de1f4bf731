package models

// Category identifies a transaction category. The value set is fixed;
// display labels live in the catalog package.
type Category string

// Income categories.
const (
	CategorySalary      Category = "salary"
	CategoryFreelance   Category = "freelance"
	CategoryInvestments Category = "investments"
	CategoryGifts       Category = "gifts"
	CategoryOtherIncome Category = "other_income"
)

// Expense categories.
const (
	CategoryFood            Category = "food"
	CategoryTransport       Category = "transport"
	CategoryHousing         Category = "housing"
	CategoryBills           Category = "bills"
	CategoryHealth          Category = "health"
	CategoryEducation       Category = "education"
	CategoryEntertainment   Category = "entertainment"
	CategoryShopping        Category = "shopping"
	CategorySavingsTransfer Category = "savings_transfer"
	CategoryOtherExpense    Category = "other_expense"
)

var incomeCategories = []Category{
	CategorySalary,
	CategoryFreelance,
	CategoryInvestments,
	CategoryGifts,
	CategoryOtherIncome,
}

var expenseCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryHousing,
	CategoryBills,
	CategoryHealth,
	CategoryEducation,
	CategoryEntertainment,
	CategoryShopping,
	CategorySavingsTransfer,
	CategoryOtherExpense,
}

// IncomeCategories returns the income category set in display order.
func IncomeCategories() []Category {
	out := make([]Category, len(incomeCategories))
	copy(out, incomeCategories)
	return out
}

// ExpenseCategories returns the expense category set in display order.
func ExpenseCategories() []Category {
	out := make([]Category, len(expenseCategories))
	copy(out, expenseCategories)
	return out
}

// IsIncome reports whether c belongs to the income category set.
func (c Category) IsIncome() bool {
	for _, ic := range incomeCategories {
		if c == ic {
			return true
		}
	}
	return false
}

// IsExpense reports whether c belongs to the expense category set.
func (c Category) IsExpense() bool {
	for _, ec := range expenseCategories {
		if c == ec {
			return true
		}
	}
	return false
}

// MatchesType reports whether c is valid for the given transaction type.
// An income transaction cannot carry an expense category and vice versa.
func (c Category) MatchesType(t TransactionType) bool {
	switch t {
	case TransactionTypeIncome:
		return c.IsIncome()
	case TransactionTypeExpense:
		return c.IsExpense()
	}
	return false
}
