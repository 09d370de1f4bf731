// Package testutil provides test helpers for setting up in-memory ledgers,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"financecontrol/internal/models"
	"financecontrol/internal/snapshot"
	"financecontrol/internal/store"
)

// DefaultOwner is the acting identity used by test ledgers.
const DefaultOwner = "user@test.com"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// SetupTestLedger opens a ledger for DefaultOwner over a fresh in-memory
// repository, returning both.
func SetupTestLedger(t *testing.T) (*store.Ledger, *snapshot.MemoryRepository) {
	t.Helper()

	repo := snapshot.NewMemoryRepository()
	ledger, err := store.Open(DefaultOwner, repo)
	if err != nil {
		t.Fatalf("failed to open test ledger: %v", err)
	}
	return ledger, repo
}

// NewTransaction builds an unstored transaction of the given type, category
// and amount (in cents) on the given date, with a unique description.
func NewTransaction(txType models.TransactionType, category models.Category, amount int64, date time.Time) models.Transaction {
	return models.Transaction{
		Type:        txType,
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: fmt.Sprintf("test transaction %d", nextID()),
	}
}

// CreateTestTransaction stores a transaction through the ledger and fails
// the test on error.
func CreateTestTransaction(t *testing.T, l *store.Ledger, txType models.TransactionType, category models.Category, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	created, err := l.CreateTransaction(NewTransaction(txType, category, amount, date))
	if err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return created
}

// NewBudget builds an unstored budget for the given category and period with
// the given limit (in cents) and alerts enabled.
func NewBudget(category models.Category, limit int64, month, year int) models.Budget {
	return models.Budget{
		Category:      category,
		MonthlyLimit:  limit,
		Month:         month,
		Year:          year,
		AlertsEnabled: true,
	}
}

// CreateTestBudget stores a budget through the ledger and fails the test on
// error.
func CreateTestBudget(t *testing.T, l *store.Ledger, category models.Category, limit int64, month, year int) *models.Budget {
	t.Helper()

	created, err := l.CreateBudget(NewBudget(category, limit, month, year))
	if err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return created
}

// Date builds a UTC date at day granularity.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
