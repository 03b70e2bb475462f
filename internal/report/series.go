// Package report turns raw transaction and breakdown collections into
// chart-ready view models. Pure transforms: no I/O, inputs are never mutated.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pocketfin-dev/pocketfin/internal/model"
)

// SeriesPoint is one month bucket of the cashflow trend chart.
type SeriesPoint struct {
	Month string          // "YYYY-MM"
	Value decimal.Decimal // income - expense
}

const maxSeriesMonths = 6

// BuildMonthlySeries groups transactions by calendar month and nets income
// against expense per bucket. The result is ascending by month key and holds
// at most the 6 most recent buckets. Months with no transactions are absent,
// not zero-filled.
func BuildMonthlySeries(transactions []model.Transaction) []SeriesPoint {
	type bucket struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for _, tx := range transactions {
		key := tx.Month()
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		switch tx.Type {
		case model.TypeIncome:
			b.income = b.income.Add(tx.Amount)
		case model.TypeExpense:
			b.expense = b.expense.Add(tx.Amount)
		}
	}

	points := make([]SeriesPoint, 0, len(buckets))
	for month, b := range buckets {
		points = append(points, SeriesPoint{Month: month, Value: b.income.Sub(b.expense)})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })

	if len(points) > maxSeriesMonths {
		points = points[len(points)-maxSeriesMonths:]
	}
	return points
}

// MaxAbsValue returns the largest absolute series value, never less than 1,
// for scaling bar charts.
func MaxAbsValue(series []SeriesPoint) decimal.Decimal {
	maxAbs := decimal.NewFromInt(1)
	for _, p := range series {
		if abs := p.Value.Abs(); abs.GreaterThan(maxAbs) {
			maxAbs = abs
		}
	}
	return maxAbs
}
