package report

import (
	"github.com/shopspring/decimal"

	"github.com/pocketfin-dev/pocketfin/internal/model"
)

// CategoryShare is a breakdown entry with its share of total spend attached.
type CategoryShare struct {
	model.BreakdownEntry
	Share decimal.Decimal
}

// ApplyShares attaches spent/total to each breakdown entry, preserving the
// server's ranking order. A zero total divides by 1 instead, so an all-zero
// breakdown yields all-zero shares rather than blowing up.
func ApplyShares(breakdown []model.BreakdownEntry) []CategoryShare {
	total := decimal.Zero
	for _, entry := range breakdown {
		total = total.Add(entry.Spent)
	}
	if total.IsZero() {
		total = decimal.NewFromInt(1)
	}

	shares := make([]CategoryShare, len(breakdown))
	for i, entry := range breakdown {
		shares[i] = CategoryShare{
			BreakdownEntry: entry,
			Share:          entry.Spent.Div(total),
		}
	}
	return shares
}
