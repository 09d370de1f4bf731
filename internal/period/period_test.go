package period_test

import (
	"testing"
	"time"

	"financecontrol/internal/models"
	"financecontrol/internal/period"
	"financecontrol/internal/testutil"
)

func tx(month, year int) models.Transaction {
	t := testutil.NewTransaction(models.TransactionTypeExpense, models.CategoryFood, 100,
		time.Date(year, time.Month(month), 10, 0, 0, 0, 0, time.UTC))
	t.SyncPeriod()
	return t
}

func TestTransactions(t *testing.T) {
	ts := []models.Transaction{tx(3, 2024), tx(4, 2024), tx(3, 2024), tx(3, 2023)}

	t.Run("matches_cached_period", func(t *testing.T) {
		got := period.Transactions(ts, period.Period{Month: 3, Year: 2024})
		if len(got) != 2 {
			t.Errorf("expected 2 transactions for 2024-03, got %d", len(got))
		}
	})

	t.Run("out_of_range_month_matches_nothing", func(t *testing.T) {
		for _, month := range []int{0, 13, -1, 99} {
			if got := period.Transactions(ts, period.Period{Month: month, Year: 2024}); len(got) != 0 {
				t.Errorf("month %d: expected empty result, got %d", month, len(got))
			}
		}
	})

	t.Run("is_a_true_partition", func(t *testing.T) {
		// The union of partitions over all distinct periods present equals
		// the input, and partitions are pairwise disjoint.
		seen := make(map[period.Period]bool)
		var periods []period.Period
		for _, record := range ts {
			p := period.Period{Month: record.Month, Year: record.Year}
			if !seen[p] {
				seen[p] = true
				periods = append(periods, p)
			}
		}

		total := 0
		ids := make(map[string]int)
		for _, p := range periods {
			for _, record := range period.Transactions(ts, p) {
				total++
				ids[record.Description]++
			}
		}
		if total != len(ts) {
			t.Errorf("union of partitions has %d records, input has %d", total, len(ts))
		}
		for desc, n := range ids {
			if n != 1 {
				t.Errorf("record %q appeared in %d partitions", desc, n)
			}
		}
	})
}

func TestBudgets(t *testing.T) {
	bs := []models.Budget{
		testutil.NewBudget(models.CategoryFood, 1000, 3, 2024),
		testutil.NewBudget(models.CategoryTransport, 1000, 4, 2024),
	}

	got := period.Budgets(bs, period.Period{Month: 3, Year: 2024})
	if len(got) != 1 || got[0].Category != models.CategoryFood {
		t.Errorf("expected only the food budget for 2024-03, got %v", got)
	}

	if got := period.Budgets(bs, period.Period{Month: 0, Year: 2024}); len(got) != 0 {
		t.Errorf("expected empty result for invalid period, got %v", got)
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		p    period.Period
		want bool
	}{
		{period.Period{Month: 1, Year: 2024}, true},
		{period.Period{Month: 12, Year: 9999}, true},
		{period.Period{Month: 0, Year: 2024}, false},
		{period.Period{Month: 13, Year: 2024}, false},
		{period.Period{Month: 6, Year: 999}, false},
		{period.Period{Month: 6, Year: 10000}, false},
	}
	for _, c := range cases {
		if got := c.p.Valid(); got != c.want {
			t.Errorf("Valid(%v): expected %v, got %v", c.p, c.want, got)
		}
	}
}

func TestFromDate(t *testing.T) {
	p := period.FromDate(time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC))
	if p.Month != 12 || p.Year != 2024 {
		t.Errorf("expected 2024-12, got %v", p)
	}
}

func TestWindow(t *testing.T) {
	t.Run("rolls_over_year_boundary", func(t *testing.T) {
		got := period.Window(period.Period{Month: 2, Year: 2024}, 6)
		want := []period.Period{
			{Month: 9, Year: 2023}, {Month: 10, Year: 2023}, {Month: 11, Year: 2023},
			{Month: 12, Year: 2023}, {Month: 1, Year: 2024}, {Month: 2, Year: 2024},
		}
		if len(got) != len(want) {
			t.Fatalf("expected %d periods, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("period %d: expected %v, got %v", i, want[i], got[i])
			}
		}
	})

	t.Run("consecutive_and_ends_at_input", func(t *testing.T) {
		// Every window of every length ends at the requested period and each
		// step advances by exactly one calendar month.
		for year := 2020; year <= 2025; year++ {
			for month := 1; month <= 12; month++ {
				end := period.Period{Month: month, Year: year}
				for n := 1; n <= 24; n += 7 {
					w := period.Window(end, n)
					if len(w) != n {
						t.Fatalf("window(%v, %d): expected %d periods, got %d", end, n, n, len(w))
					}
					if w[n-1] != end {
						t.Fatalf("window(%v, %d): expected last period %v, got %v", end, n, end, w[n-1])
					}
					for i := 1; i < n; i++ {
						prev, cur := w[i-1], w[i]
						wantMonth, wantYear := prev.Month+1, prev.Year
						if wantMonth == 13 {
							wantMonth, wantYear = 1, prev.Year+1
						}
						if cur.Month != wantMonth || cur.Year != wantYear {
							t.Fatalf("window(%v, %d): step %d jumps from %v to %v", end, n, i, prev, cur)
						}
					}
				}
			}
		}
	})

	t.Run("non_positive_length", func(t *testing.T) {
		if got := period.Window(period.Period{Month: 1, Year: 2024}, 0); got != nil {
			t.Errorf("expected nil window for n=0, got %v", got)
		}
	})
}
