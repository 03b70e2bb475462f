// Package budget derives spend, progress, and a run-rate forecast for
// client-side budget plans. Stats are recomputed from the current transaction
// cache on every render and never cached.
package budget

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketfin-dev/pocketfin/internal/model"
)

// Stats is everything a budget card displays beyond the plan itself.
type Stats struct {
	Spent       decimal.Decimal
	Progress    decimal.Decimal // spent / amount, zero when amount is zero
	PeriodDays  int
	ElapsedDays int
	Forecast    decimal.Decimal // linear extrapolation of spend to period end
	WillOverrun bool
}

// Cycle lengths used when a plan has no explicit date range.
const (
	weeklyDays  = 7
	monthlyDays = 30
	yearlyDays  = 365
)

// ComputeStats filters the transaction cache to expenses matching the plan's
// categories and date bounds, then extrapolates a naive linear run rate.
// Deliberately simple: not a fitted model.
func ComputeStats(plan model.BudgetPlan, transactions []model.Transaction, today time.Time) Stats {
	spent := computeSpent(plan, transactions)

	period := periodDays(plan)
	elapsed := elapsedDays(plan, period, today)

	forecast := spent.
		Div(decimal.NewFromInt(int64(elapsed))).
		Mul(decimal.NewFromInt(int64(period)))

	progress := decimal.Zero
	if plan.Amount.IsPositive() {
		progress = spent.Div(plan.Amount)
	}

	return Stats{
		Spent:       spent,
		Progress:    progress,
		PeriodDays:  period,
		ElapsedDays: elapsed,
		Forecast:    forecast,
		WillOverrun: plan.Amount.IsPositive() && forecast.GreaterThan(plan.Amount),
	}
}

func computeSpent(plan model.BudgetPlan, transactions []model.Transaction) decimal.Decimal {
	wanted := make(map[string]bool, len(plan.CategoryIDs))
	for _, id := range plan.CategoryIDs {
		wanted[id] = true
	}

	spent := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != model.TypeExpense {
			continue
		}
		if len(wanted) > 0 {
			// Uncategorized transactions only match plans covering all categories.
			if tx.CategoryID == nil || !wanted[strconv.Itoa(*tx.CategoryID)] {
				continue
			}
		}
		if plan.StartDate != "" && tx.Date < plan.StartDate {
			continue
		}
		if plan.EndDate != "" && tx.Date > plan.EndDate {
			continue
		}
		spent = spent.Add(tx.Amount)
	}
	return spent
}

// periodDays is the explicit range length when both bounds are set, else a
// fixed constant per cycle.
func periodDays(plan model.BudgetPlan) int {
	if plan.StartDate != "" && plan.EndDate != "" {
		if days := daysBetween(plan.StartDate, plan.EndDate); days > 1 {
			return days
		}
		return 1
	}
	switch plan.Cycle {
	case model.CycleWeekly:
		return weeklyDays
	case model.CycleYearly:
		return yearlyDays
	default:
		return monthlyDays
	}
}

// elapsedDays counts inclusive days from the plan start to today, clamped
// into [1, period]. Without a start date, half the period is assumed.
func elapsedDays(plan model.BudgetPlan, period int, today time.Time) int {
	if plan.StartDate == "" {
		return (period + 1) / 2
	}
	elapsed := daysBetween(plan.StartDate, today.Format("2006-01-02"))
	if elapsed < 1 {
		return 1
	}
	if elapsed > period {
		return period
	}
	return elapsed
}

// daysBetween returns the inclusive day count between two "YYYY-MM-DD" dates.
// Unparseable input counts as zero days.
func daysBetween(from, to string) int {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
