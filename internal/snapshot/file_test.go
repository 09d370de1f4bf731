package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "financecontrol/internal/errors"
	"financecontrol/internal/models"
	"financecontrol/internal/snapshot"
	"financecontrol/internal/testutil"
)

func TestFileRepository(t *testing.T) {
	t.Run("missing_owner_yields_empty_snapshot", func(t *testing.T) {
		repo, err := snapshot.NewFileRepository(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create repository: %v", err)
		}

		snap, err := repo.Load("nobody@test.com")
		if err != nil {
			t.Fatalf("expected nil error for missing owner, got %v", err)
		}
		if len(snap.Transactions) != 0 || len(snap.Budgets) != 0 {
			t.Errorf("expected empty snapshot, got %+v", snap)
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		repo, err := snapshot.NewFileRepository(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create repository: %v", err)
		}

		record := testutil.NewTransaction(models.TransactionTypeExpense,
			models.CategoryFood, 1299, testutil.Date(2024, 3, 7))
		record.SyncPeriod()
		in := snapshot.Snapshot{
			Transactions: []models.Transaction{record},
			Budgets:      []models.Budget{testutil.NewBudget(models.CategoryFood, 30000, 3, 2024)},
		}

		if err := repo.Save("alice@test.com", in); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		out, err := repo.Load("alice@test.com")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}

		if len(out.Transactions) != 1 || out.Transactions[0].Description != record.Description {
			t.Errorf("transactions did not survive the round trip: %+v", out.Transactions)
		}
		if len(out.Budgets) != 1 || out.Budgets[0].MonthlyLimit != 30000 {
			t.Errorf("budgets did not survive the round trip: %+v", out.Budgets)
		}
	})

	t.Run("owners_are_isolated", func(t *testing.T) {
		repo, err := snapshot.NewFileRepository(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create repository: %v", err)
		}

		if err := repo.Save("alice@test.com", snapshot.Snapshot{
			Budgets: []models.Budget{testutil.NewBudget(models.CategoryFood, 100, 3, 2024)},
		}); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		snap, err := repo.Load("bob@test.com")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if len(snap.Budgets) != 0 {
			t.Errorf("bob must not see alice's budgets: %+v", snap.Budgets)
		}
	})

	t.Run("corrupt_file_yields_empty_snapshot_and_error", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := snapshot.NewFileRepository(dir)
		if err != nil {
			t.Fatalf("failed to create repository: %v", err)
		}

		// '@' sanitizes to '_' in the stored file name.
		path := filepath.Join(dir, "broken_test.com.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
			t.Fatalf("failed to plant corrupt file: %v", err)
		}

		snap, err := repo.Load("broken@test.com")
		testutil.AssertKind(t, err, apperrors.KindPersistence)
		if len(snap.Transactions) != 0 || len(snap.Budgets) != 0 {
			t.Errorf("expected empty snapshot for corrupt payload, got %+v", snap)
		}
	})
}

func TestMemoryRepository(t *testing.T) {
	repo := snapshot.NewMemoryRepository()

	snap, err := repo.Load("fresh@test.com")
	if err != nil {
		t.Fatalf("expected nil error for unknown owner, got %v", err)
	}
	if len(snap.Transactions) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}

	in := snapshot.Snapshot{
		Budgets: []models.Budget{testutil.NewBudget(models.CategoryHealth, 5000, 6, 2024)},
	}
	if err := repo.Save("fresh@test.com", in); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	out, err := repo.Load("fresh@test.com")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(out.Budgets) != 1 || out.Budgets[0].Category != models.CategoryHealth {
		t.Errorf("budget did not survive the round trip: %+v", out.Budgets)
	}

	t.Run("corrupt_hook", func(t *testing.T) {
		repo.Corrupt("fresh@test.com")
		snap, err := repo.Load("fresh@test.com")
		testutil.AssertKind(t, err, apperrors.KindPersistence)
		if len(snap.Budgets) != 0 {
			t.Errorf("expected empty snapshot after corruption, got %+v", snap)
		}
	})
}
