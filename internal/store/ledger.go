// Package store implements the entity store: per-owner in-memory collections
// of transactions and budgets with create/update/delete and a whole-snapshot
// persistence round-trip after every mutation.
package store

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"financecontrol/internal/catalog"
	apperrors "financecontrol/internal/errors"
	"financecontrol/internal/logger"
	"financecontrol/internal/models"
	"financecontrol/internal/snapshot"
	"financecontrol/internal/uuid"
	"financecontrol/internal/validator"
)

// Ledger holds one owner's transactions and budgets in memory and writes the
// whole snapshot back through the repository after every mutation.
//
// All methods assume a single acting user per owner key; there is no locking
// and no protection against two concurrent writers racing on the same
// persisted snapshot. Last write wins.
type Ledger struct {
	owner string
	repo  snapshot.Repository
	log   *zap.SugaredLogger

	transactions []models.Transaction
	budgets      []models.Budget
}

// Open loads the owner's snapshot into a new Ledger. A missing snapshot
// starts the ledger empty; an unreadable one does too, with the read failure
// logged rather than returned. This is the only place a persistence error is
// deliberately swallowed.
func Open(owner string, repo snapshot.Repository) (*Ledger, error) {
	if owner == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "owner identity is required")
	}

	log := logger.Get()
	snap, err := repo.Load(owner)
	if err != nil {
		log.Warnw("snapshot unreadable, starting with empty collections",
			"owner", owner, "error", err)
		snap = snapshot.Snapshot{}
	}

	l := &Ledger{
		owner:        owner,
		repo:         repo,
		log:          log,
		transactions: snap.Transactions,
		budgets:      snap.Budgets,
	}
	l.sortTransactions()
	return l, nil
}

// Owner returns the acting identity this ledger is scoped to.
func (l *Ledger) Owner() string { return l.owner }

// Transactions returns a copy of the owner's transactions, newest first.
func (l *Ledger) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Budgets returns a copy of the owner's budgets in insertion order.
func (l *Ledger) Budgets() []models.Budget {
	out := make([]models.Budget, len(l.budgets))
	copy(out, l.budgets)
	return out
}

// CreateTransaction validates and stores a new transaction. The id, owner,
// month and year fields are assigned here; caller-supplied values for them
// are ignored.
//
// On a persistence failure the record is still returned and kept in memory;
// the error reports the lost durability.
func (l *Ledger) CreateTransaction(t models.Transaction) (*models.Transaction, error) {
	t.ID = uuid.New()
	t.Owner = l.owner
	t.SyncPeriod()

	if err := validator.Struct(&t); err != nil {
		return nil, err
	}

	l.transactions = append(l.transactions, t)
	l.sortTransactions()
	return &t, l.persist()
}

// UpdateTransaction replaces the stored transaction with the same id. The
// month and year fields are recomputed from the (possibly changed) date
// before replacement.
func (l *Ledger) UpdateTransaction(t models.Transaction) (*models.Transaction, error) {
	idx := l.transactionIndex(t.ID)
	if idx < 0 {
		return nil, apperrors.ErrTransactionNotFound
	}
	if l.transactions[idx].Owner != l.owner {
		return nil, apperrors.ErrNotOwner
	}

	t.Owner = l.transactions[idx].Owner
	t.SyncPeriod()

	if err := validator.Struct(&t); err != nil {
		return nil, err
	}

	l.transactions[idx] = t
	l.sortTransactions()
	return &t, l.persist()
}

// DeleteTransaction removes the transaction with the given id. Deleting an
// id that does not exist is a no-op, not an error.
func (l *Ledger) DeleteTransaction(id string) error {
	idx := l.transactionIndex(id)
	if idx < 0 {
		return nil
	}
	l.transactions = append(l.transactions[:idx], l.transactions[idx+1:]...)
	return l.persist()
}

// CreateBudget validates and stores a new budget. At most one budget may
// exist per (category, month, year); duplicates are rejected, never silently
// inserted.
func (l *Ledger) CreateBudget(b models.Budget) (*models.Budget, error) {
	b.ID = uuid.New()
	b.Owner = l.owner

	if err := validator.Struct(&b); err != nil {
		return nil, err
	}
	if l.findBudgetByKey(b.Key(), "") >= 0 {
		return nil, apperrors.ErrDuplicateBudget
	}

	l.budgets = append(l.budgets, b)
	return &b, l.persist()
}

// UpdateBudget replaces the stored budget with the same id. Moving a budget
// onto another budget's (category, month, year) slot is rejected the same
// way a duplicate create is.
func (l *Ledger) UpdateBudget(b models.Budget) (*models.Budget, error) {
	idx := l.budgetIndex(b.ID)
	if idx < 0 {
		return nil, apperrors.ErrBudgetNotFound
	}
	if l.budgets[idx].Owner != l.owner {
		return nil, apperrors.ErrNotOwner
	}

	b.Owner = l.budgets[idx].Owner

	if err := validator.Struct(&b); err != nil {
		return nil, err
	}
	if l.findBudgetByKey(b.Key(), b.ID) >= 0 {
		return nil, apperrors.ErrDuplicateBudget
	}

	l.budgets[idx] = b
	return &b, l.persist()
}

// DeleteBudget removes the budget with the given id. Idempotent like
// DeleteTransaction.
func (l *Ledger) DeleteBudget(id string) error {
	idx := l.budgetIndex(id)
	if idx < 0 {
		return nil
	}
	l.budgets = append(l.budgets[:idx], l.budgets[idx+1:]...)
	return l.persist()
}

func (l *Ledger) transactionIndex(id string) int {
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) budgetIndex(id string) int {
	for i := range l.budgets {
		if l.budgets[i].ID == id {
			return i
		}
	}
	return -1
}

// findBudgetByKey returns the index of the budget occupying the uniqueness
// key, skipping the budget with excludeID (for updates).
func (l *Ledger) findBudgetByKey(key, excludeID string) int {
	for i := range l.budgets {
		if l.budgets[i].ID != excludeID && l.budgets[i].Key() == key {
			return i
		}
	}
	return -1
}

// sortTransactions keeps the collection ordered by date descending. The
// tie-break for equal dates is not guaranteed.
func (l *Ledger) sortTransactions() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.After(l.transactions[j].Date)
	})
}

// persist writes the full snapshot back to the repository. A write failure
// is reported but does not roll back the in-memory mutation: the session
// stays consistent even if durability is lost.
func (l *Ledger) persist() error {
	snap := snapshot.Snapshot{
		Transactions: l.transactions,
		Budgets:      l.budgets,
	}
	if err := l.repo.Save(l.owner, snap); err != nil {
		l.log.Errorw("snapshot save failed, in-memory state kept",
			"owner", l.owner, "error", err)
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return nil
}

// FilterByTerm returns the transactions whose description or category label
// contains term, case-insensitively. An empty term matches everything.
func FilterByTerm(ts []models.Transaction, term string) []models.Transaction {
	if term == "" {
		return ts
	}
	term = strings.ToLower(term)
	var out []models.Transaction
	for _, t := range ts {
		if strings.Contains(strings.ToLower(t.Description), term) ||
			strings.Contains(strings.ToLower(catalog.Label(t.Category)), term) {
			out = append(out, t)
		}
	}
	return out
}
