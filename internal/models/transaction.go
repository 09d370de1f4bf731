package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// RecurringType represents how often a recurring transaction repeats.
// The flag is metadata only; the engine never generates future instances.
type RecurringType string

const (
	RecurringMonthly RecurringType = "monthly"
	RecurringWeekly  RecurringType = "weekly"
	RecurringYearly  RecurringType = "yearly"
)

// Transaction represents a single income or expense record.
// Amount is stored in cents; the sign is implied by Type.
// Month and Year are cached from Date and form the partition key
// used by period queries. They are never set by callers directly.
type Transaction struct {
	ID            string          `json:"id"`
	Owner         string          `json:"owner"`
	Type          TransactionType `json:"type" validate:"required,transaction_type"`
	Category      Category        `json:"category" validate:"required,category"`
	Amount        int64           `json:"amount" validate:"gt=0"`
	Date          time.Time       `json:"date" validate:"required"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	Description   string          `json:"description,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	Location      string          `json:"location,omitempty"`
	ReceiptURL    string          `json:"receipt_url,omitempty"`
	Recurring     bool            `json:"recurring,omitempty"`
	RecurringType RecurringType   `json:"recurring_type,omitempty" validate:"required_if=Recurring true,omitempty,recurring_type"`
}

// SyncPeriod recomputes the cached Month and Year fields from Date.
// Must be called whenever Date is assigned or changed.
func (t *Transaction) SyncPeriod() {
	t.Month = int(t.Date.Month())
	t.Year = t.Date.Year()
}
