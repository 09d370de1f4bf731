package identity_test

import (
	"os"
	"path/filepath"
	"testing"

	"financecontrol/internal/identity"
	"financecontrol/internal/models"
	"financecontrol/internal/testutil"
)

func newStore(t *testing.T) *identity.Store {
	t.Helper()

	store, err := identity.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestLoad(t *testing.T) {
	t.Run("missing_profile_is_fresh", func(t *testing.T) {
		store := newStore(t)
		p := store.Load("new@test.com")
		if p.Email != "new@test.com" {
			t.Errorf("expected email carried over, got %q", p.Email)
		}
		if !p.Goals.IsZero() {
			t.Errorf("expected zero goals, got %+v", p.Goals)
		}
	})

	t.Run("corrupt_profile_is_fresh", func(t *testing.T) {
		dir := t.TempDir()
		store, err := identity.NewStore(dir)
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		path := filepath.Join(dir, "broken_test.com.profile.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
			t.Fatalf("failed to plant corrupt profile: %v", err)
		}

		p := store.Load("broken@test.com")
		if p.Email != "broken@test.com" || !p.Goals.IsZero() {
			t.Errorf("expected fresh profile, got %+v", p)
		}
	})
}

func TestSave(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		store := newStore(t)
		in := identity.Profile{
			Email:    "alice@test.com",
			Name:     "Alice",
			Currency: "BRL",
			Goals:    models.FinancialGoals{MonthlyIncomeTarget: 500000},
		}
		testutil.AssertNoError(t, store.Save(in))

		out := store.Load("alice@test.com")
		if out.Name != "Alice" || out.Currency != "BRL" {
			t.Errorf("profile did not survive the round trip: %+v", out)
		}
		if out.Goals.MonthlyIncomeTarget != 500000 {
			t.Errorf("goals did not survive the round trip: %+v", out.Goals)
		}
	})

	t.Run("rejects_invalid_email", func(t *testing.T) {
		store := newStore(t)
		err := store.Save(identity.Profile{Email: "not-an-email"})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("rejects_unknown_currency", func(t *testing.T) {
		store := newStore(t)
		err := store.Save(identity.Profile{Email: "alice@test.com", Currency: "XYZ"})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestSaveGoals(t *testing.T) {
	store := newStore(t)

	first := models.FinancialGoals{
		MonthlyIncomeTarget: 500000,
		MonthlyExpenseLimit: 300000,
		SavingsTarget:       100000,
	}
	if _, err := store.SaveGoals("alice@test.com", first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	// The goal set is replaced wholesale: fields absent in the new set reset
	// to zero rather than keeping their old values.
	second := models.FinancialGoals{SavingsTarget: 200000}
	updated, err := store.SaveGoals("alice@test.com", second)
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if updated.Goals != second {
		t.Errorf("expected goals replaced wholesale, got %+v", updated.Goals)
	}

	reloaded := store.Load("alice@test.com")
	if reloaded.Goals.MonthlyIncomeTarget != 0 || reloaded.Goals.SavingsTarget != 200000 {
		t.Errorf("persisted goals not replaced wholesale: %+v", reloaded.Goals)
	}
}
