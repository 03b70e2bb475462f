package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketfin-dev/pocketfin/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func expense(date, amount string, categoryID *int) model.Transaction {
	return model.Transaction{
		Date:       date,
		Type:       model.TypeExpense,
		Amount:     dec(amount),
		CategoryID: categoryID,
	}
}

func intPtr(v int) *int { return &v }

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeStats_Scenario(t *testing.T) {
	plan := model.BudgetPlan{
		Name:      "January groceries",
		Amount:    dec("1000"),
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		Cycle:     model.CycleMonthly,
	}
	transactions := []model.Transaction{
		expense("2024-01-03", "100", nil),
		expense("2024-01-10", "200", nil),
	}

	stats := ComputeStats(plan, transactions, day("2024-01-15"))

	assert.Equal(t, 31, stats.PeriodDays)
	assert.Equal(t, 15, stats.ElapsedDays)
	assert.True(t, stats.Spent.Equal(dec("300")))
	assert.True(t, stats.Forecast.Equal(dec("620")), "300/15*31 = 620, got %s", stats.Forecast)
	assert.False(t, stats.WillOverrun)
}

func TestComputeStats_Overrun(t *testing.T) {
	plan := model.BudgetPlan{
		Amount:    dec("500"),
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	}
	transactions := []model.Transaction{expense("2024-01-05", "400", nil)}

	stats := ComputeStats(plan, transactions, day("2024-01-10"))
	assert.True(t, stats.Forecast.GreaterThan(plan.Amount))
	assert.True(t, stats.WillOverrun)
}

func TestComputeStats_ZeroAmountNeverOverruns(t *testing.T) {
	plan := model.BudgetPlan{
		Amount:    decimal.Zero,
		StartDate: "2024-01-01",
	}
	transactions := []model.Transaction{expense("2024-01-05", "99999", nil)}

	stats := ComputeStats(plan, transactions, day("2024-01-10"))
	assert.False(t, stats.WillOverrun)
	assert.True(t, stats.Progress.IsZero())
}

func TestComputeStats_CategoryFilter(t *testing.T) {
	plan := model.BudgetPlan{
		Amount:      dec("100"),
		CategoryIDs: []string{"7"},
	}
	transactions := []model.Transaction{
		expense("2024-01-05", "40", intPtr(7)),
		expense("2024-01-06", "60", intPtr(8)),
		expense("2024-01-07", "25", nil), // uncategorized never matches a scoped plan
	}

	stats := ComputeStats(plan, transactions, day("2024-01-10"))
	assert.True(t, stats.Spent.Equal(dec("40")))
}

func TestComputeStats_EmptyCategorySetMatchesAll(t *testing.T) {
	plan := model.BudgetPlan{Amount: dec("100")}
	transactions := []model.Transaction{
		expense("2024-01-05", "40", intPtr(7)),
		expense("2024-01-07", "25", nil),
	}

	stats := ComputeStats(plan, transactions, day("2024-01-10"))
	assert.True(t, stats.Spent.Equal(dec("65")))
}

func TestComputeStats_IgnoresIncome(t *testing.T) {
	plan := model.BudgetPlan{Amount: dec("100")}
	transactions := []model.Transaction{
		{Date: "2024-01-05", Type: model.TypeIncome, Amount: dec("500")},
		expense("2024-01-06", "30", nil),
	}

	stats := ComputeStats(plan, transactions, day("2024-01-10"))
	assert.True(t, stats.Spent.Equal(dec("30")))
}

func TestComputeStats_InclusiveDateBounds(t *testing.T) {
	plan := model.BudgetPlan{
		Amount:    dec("100"),
		StartDate: "2024-01-10",
		EndDate:   "2024-01-20",
	}
	transactions := []model.Transaction{
		expense("2024-01-09", "1", nil),
		expense("2024-01-10", "2", nil),
		expense("2024-01-20", "4", nil),
		expense("2024-01-21", "8", nil),
	}

	stats := ComputeStats(plan, transactions, day("2024-01-15"))
	assert.True(t, stats.Spent.Equal(dec("6")), "bounds are inclusive on both ends")
}

func TestComputeStats_CyclePeriods(t *testing.T) {
	for _, tc := range []struct {
		cycle model.BudgetCycle
		days  int
	}{
		{model.CycleWeekly, 7},
		{model.CycleMonthly, 30},
		{model.CycleYearly, 365},
		{model.CycleOneTime, 30},
	} {
		plan := model.BudgetPlan{Amount: dec("100"), Cycle: tc.cycle}
		stats := ComputeStats(plan, nil, day("2024-01-15"))
		assert.Equal(t, tc.days, stats.PeriodDays, "cycle %s", tc.cycle)
	}
}

func TestComputeStats_NoStartDateAssumesHalfPeriod(t *testing.T) {
	plan := model.BudgetPlan{Amount: dec("100"), Cycle: model.CycleWeekly}
	stats := ComputeStats(plan, nil, day("2024-01-15"))
	assert.Equal(t, 4, stats.ElapsedDays, "ceil(7/2)")
}

func TestComputeStats_ElapsedClamped(t *testing.T) {
	plan := model.BudgetPlan{
		Amount:    dec("100"),
		StartDate: "2024-01-01",
		EndDate:   "2024-01-10",
	}

	// Today far past the end: elapsed capped at the period length.
	stats := ComputeStats(plan, nil, day("2024-03-01"))
	assert.Equal(t, stats.PeriodDays, stats.ElapsedDays)

	// Today before the start: elapsed floored at one day.
	stats = ComputeStats(plan, nil, day("2023-12-25"))
	assert.Equal(t, 1, stats.ElapsedDays)
}

func TestValidate(t *testing.T) {
	valid := model.BudgetPlan{Name: "Groceries", Amount: dec("100"), Threshold: 80}
	require.NoError(t, Validate(valid))

	noName := valid
	noName.Name = "   "
	assert.ErrorIs(t, Validate(noName), ErrNameRequired)

	zeroAmount := valid
	zeroAmount.Amount = decimal.Zero
	assert.ErrorIs(t, Validate(zeroAmount), ErrAmountNotPositive)

	badThreshold := valid
	badThreshold.Threshold = 0
	assert.ErrorIs(t, Validate(badThreshold), ErrThresholdRange)

	badThreshold.Threshold = 101
	assert.ErrorIs(t, Validate(badThreshold), ErrThresholdRange)
}
