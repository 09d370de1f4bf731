package catalog_test

import (
	"testing"

	"financecontrol/internal/catalog"
	"financecontrol/internal/models"
)

func TestOptions(t *testing.T) {
	income := catalog.IncomeOptions()
	expense := catalog.ExpenseOptions()

	if len(income) != len(models.IncomeCategories()) {
		t.Errorf("income options (%d) must cover the income category set (%d)",
			len(income), len(models.IncomeCategories()))
	}
	if len(expense) != len(models.ExpenseCategories()) {
		t.Errorf("expense options (%d) must cover the expense category set (%d)",
			len(expense), len(models.ExpenseCategories()))
	}

	for _, opt := range append(income, expense...) {
		if opt.Label == "" {
			t.Errorf("category %q has no label", opt.Value)
		}
	}

	if income[0].Value != models.CategorySalary || income[0].Label != "Salary" {
		t.Errorf("unexpected first income option: %+v", income[0])
	}
}

func TestLabel(t *testing.T) {
	if got := catalog.Label(models.CategoryOtherExpense); got != "Other Expense" {
		t.Errorf("expected %q, got %q", "Other Expense", got)
	}
	// Unknown categories fall back to the raw value instead of erroring.
	if got := catalog.Label("mystery"); got != "mystery" {
		t.Errorf("expected raw fallback, got %q", got)
	}
}

func TestMonthName(t *testing.T) {
	if got := catalog.MonthName(1); got != "January" {
		t.Errorf("expected January, got %q", got)
	}
	if got := catalog.MonthName(12); got != "December" {
		t.Errorf("expected December, got %q", got)
	}
	for _, m := range []int{0, 13, -5} {
		if got := catalog.MonthName(m); got != "" {
			t.Errorf("MonthName(%d): expected empty string, got %q", m, got)
		}
	}
}
