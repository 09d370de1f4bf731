// Package snapshot defines the persisted state layout and the repository
// abstraction over it. One snapshot holds the full (transactions, budgets)
// state for one owner; every mutation replaces the whole snapshot. This is
// last-write-wins persistence with no protection against concurrent writers,
// which is acceptable because exactly one actor uses a given owner key at a
// time.
package snapshot

import "financecontrol/internal/models"

// Snapshot is the full persisted state for one owner.
type Snapshot struct {
	Transactions []models.Transaction `json:"transactions"`
	Budgets      []models.Budget      `json:"budgets"`
}

// Repository loads and saves whole per-owner snapshots.
//
// Persistence is a best-effort cache, not the source of truth: Load returns
// an empty snapshot and a nil error when nothing is stored under the key,
// and an empty snapshot plus a persistence error when the stored payload
// cannot be decoded. Callers fall back to the empty snapshot either way.
type Repository interface {
	Load(owner string) (Snapshot, error)
	Save(owner string, snap Snapshot) error
}
