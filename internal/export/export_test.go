package export_test

import (
	"strings"
	"testing"

	"financecontrol/internal/export"
	"financecontrol/internal/models"
	"financecontrol/internal/period"
	"financecontrol/internal/testutil"
)

func TestWrite(t *testing.T) {
	t.Run("header_only_for_empty_set", func(t *testing.T) {
		var buf strings.Builder
		if err := export.Write(&buf, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "Date,Type,Category,Description,Amount\n" {
			t.Errorf("unexpected output: %q", buf.String())
		}
	})

	t.Run("rows", func(t *testing.T) {
		ts := []models.Transaction{
			{
				Type:        models.TransactionTypeIncome,
				Category:    models.CategorySalary,
				Description: "March salary",
				Amount:      450000,
				Date:        testutil.Date(2024, 3, 5),
			},
			{
				Type:        models.TransactionTypeExpense,
				Category:    models.CategoryFood,
				Description: "groceries, weekly",
				Amount:      12990,
				Date:        testutil.Date(2024, 3, 7),
			},
		}

		var buf strings.Builder
		if err := export.Write(&buf, ts); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
		}
		if lines[1] != "2024-03-05,income,salary,March salary,4500.00" {
			t.Errorf("unexpected income row: %q", lines[1])
		}
		// Descriptions containing the delimiter must come out quoted.
		if lines[2] != `2024-03-07,expense,food,"groceries, weekly",129.90` {
			t.Errorf("unexpected expense row: %q", lines[2])
		}
	})
}

func TestFilename(t *testing.T) {
	got := export.Filename(period.Period{Month: 3, Year: 2024})
	if got != "transactions_3_2024.csv" {
		t.Errorf("unexpected filename: %q", got)
	}
}
