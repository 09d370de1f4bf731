// Package validator wraps go-playground/validator with the domain rules the
// entity store enforces on every create and update.
package validator

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "financecontrol/internal/errors"
	"financecontrol/internal/models"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Get returns the shared validator instance with all custom rules registered.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("transaction_type", validateTransactionType)
		_ = validate.RegisterValidation("category", validateCategory)
		_ = validate.RegisterValidation("expense_category", validateExpenseCategory)
		_ = validate.RegisterValidation("recurring_type", validateRecurringType)
		validate.RegisterStructValidation(transactionStructLevel, models.Transaction{})
	})
	return validate
}

// Struct validates v and converts the first violation into a ValidationError.
func Struct(v interface{}) error {
	if err := Get().Struct(v); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			if first.Tag() == "category_match" {
				return apperrors.ErrCategoryMismatch
			}
			if first.Field() == "Amount" && first.Tag() == "gt" {
				return apperrors.ErrInvalidAmount
			}
			msg := fmt.Sprintf("field %s failed validation rule %q", first.Field(), first.Tag())
			return apperrors.WithMessage(apperrors.ErrValidation, msg)
		}
		return apperrors.Wrap(apperrors.ErrValidation, err)
	}
	return nil
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch models.TransactionType(fl.Field().String()) {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
		return true
	}
	return false
}

func validateCategory(fl validator.FieldLevel) bool {
	c := models.Category(fl.Field().String())
	return c.IsIncome() || c.IsExpense()
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsExpense()
}

func validateRecurringType(fl validator.FieldLevel) bool {
	switch models.RecurringType(fl.Field().String()) {
	case models.RecurringMonthly, models.RecurringWeekly, models.RecurringYearly:
		return true
	}
	return false
}

// transactionStructLevel enforces cross-field rules: the category set must
// match the transaction type.
func transactionStructLevel(sl validator.StructLevel) {
	tx := sl.Current().Interface().(models.Transaction)
	if tx.Type == "" || tx.Category == "" {
		// Field-level rules already report these.
		return
	}
	if !tx.Category.MatchesType(tx.Type) {
		sl.ReportError(tx.Category, "Category", "category", "category_match", "")
	}
}
