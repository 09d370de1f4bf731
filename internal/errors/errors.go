// Package errors provides custom error types for the FinanceControl engine.
// All engine errors use AppError so callers can branch on a stable code and
// on the recovery taxonomy kind without parsing messages.
package errors

import "errors"

// Kind classifies an error for recovery purposes.
type Kind string

const (
	// KindValidation marks malformed or out-of-contract input. The mutation
	// is rejected and prior state is untouched.
	KindValidation Kind = "validation"
	// KindNotFound marks a referenced id that does not exist.
	KindNotFound Kind = "not_found"
	// KindOwnership marks a record whose owner does not match the acting
	// identity. The mutation is refused.
	KindOwnership Kind = "ownership"
	// KindPersistence marks an underlying storage read or write failure.
	KindPersistence Kind = "persistence"
)

// AppError represents a structured engine error with a stable error code,
// human-readable message, taxonomy kind, and optional internal error.
type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Kind     Kind   `json:"-"`
	Internal error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/kind but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Kind:     sentinel.Kind,
		Internal: internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  message,
		Kind:     sentinel.Kind,
		Internal: sentinel.Internal,
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Validation errors.
var (
	ErrValidation       = &AppError{Code: "VALIDATION_ERROR", Message: "Invalid input", Kind: KindValidation}
	ErrInvalidAmount    = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be greater than zero", Kind: KindValidation}
	ErrCategoryMismatch = &AppError{Code: "CATEGORY_MISMATCH", Message: "Category does not match the transaction type", Kind: KindValidation}
	ErrDuplicateBudget  = &AppError{Code: "DUPLICATE_BUDGET", Message: "A budget for this category and month already exists", Kind: KindValidation}
)

// Lookup errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", Kind: KindNotFound}
	ErrBudgetNotFound      = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", Kind: KindNotFound}
)

// Ownership errors.
var (
	ErrNotOwner = &AppError{Code: "NOT_OWNER", Message: "Record belongs to another user", Kind: KindOwnership}
)

// Persistence errors.
var (
	ErrPersistence     = &AppError{Code: "PERSISTENCE_ERROR", Message: "Storage read or write failed", Kind: KindPersistence}
	ErrSnapshotCorrupt = &AppError{Code: "SNAPSHOT_CORRUPT", Message: "Stored snapshot could not be decoded", Kind: KindPersistence}
)
