package store

import (
	"financecontrol/internal/models"
	"financecontrol/internal/pagination"
)

// TransactionsPage returns one page of the owner's transactions, newest
// first.
func (l *Ledger) TransactionsPage(req pagination.PageRequest) pagination.PageResponse[models.Transaction] {
	return pagination.Slice(l.transactions, req)
}

// BudgetsPage returns one page of the owner's budgets in insertion order.
func (l *Ledger) BudgetsPage(req pagination.PageRequest) pagination.PageResponse[models.Budget] {
	return pagination.Slice(l.budgets, req)
}
