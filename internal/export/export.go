// Package export renders a period's transactions as a delimited text table.
// It is pure formatting over already-partitioned records; no engine state is
// involved.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"financecontrol/internal/models"
	"financecontrol/internal/money"
	"financecontrol/internal/period"
)

var header = []string{"Date", "Type", "Category", "Description", "Amount"}

// Write writes the transactions as CSV to w. Amounts are formatted to two
// decimals here, at the presentation boundary; the records themselves stay
// in cents.
func Write(w io.Writer, ts []models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, t := range ts {
		row := []string{
			t.Date.Format("2006-01-02"),
			string(t.Type),
			string(t.Category),
			t.Description,
			money.FormatCents(t.Amount),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename suggests a download name for a period's export.
func Filename(p period.Period) string {
	return fmt.Sprintf("transactions_%d_%d.csv", p.Month, p.Year)
}
