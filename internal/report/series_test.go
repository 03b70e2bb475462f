package report

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketfin-dev/pocketfin/internal/model"
)

func tx(date string, txType model.TransactionType, amount string) model.Transaction {
	return model.Transaction{
		Date:   date,
		Type:   txType,
		Amount: decimal.RequireFromString(amount),
	}
}

func TestBuildMonthlySeries_Scenario(t *testing.T) {
	transactions := []model.Transaction{
		tx("2024-01-05", model.TypeExpense, "100"),
		tx("2024-01-20", model.TypeIncome, "300"),
		tx("2024-02-01", model.TypeExpense, "50"),
	}

	series := BuildMonthlySeries(transactions)
	require.Len(t, series, 2)
	assert.Equal(t, "2024-01", series[0].Month)
	assert.True(t, series[0].Value.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "2024-02", series[1].Month)
	assert.True(t, series[1].Value.Equal(decimal.NewFromInt(-50)))
}

func TestBuildMonthlySeries_Empty(t *testing.T) {
	assert.Empty(t, BuildMonthlySeries(nil))
	assert.Empty(t, BuildMonthlySeries([]model.Transaction{}))
}

func TestBuildMonthlySeries_KeepsLastSixAscending(t *testing.T) {
	var transactions []model.Transaction
	for m := 1; m <= 9; m++ {
		transactions = append(transactions, tx(fmt.Sprintf("2024-%02d-10", m), model.TypeIncome, "10"))
	}

	series := BuildMonthlySeries(transactions)
	require.Len(t, series, 6)
	assert.Equal(t, "2024-04", series[0].Month)
	assert.Equal(t, "2024-09", series[5].Month)
	for i := 1; i < len(series); i++ {
		assert.Less(t, series[i-1].Month, series[i].Month, "months must be strictly ascending")
	}
}

func TestBuildMonthlySeries_NoGapFilling(t *testing.T) {
	transactions := []model.Transaction{
		tx("2024-01-15", model.TypeIncome, "100"),
		tx("2024-03-15", model.TypeExpense, "40"),
	}

	series := BuildMonthlySeries(transactions)
	require.Len(t, series, 2)
	assert.Equal(t, "2024-01", series[0].Month)
	assert.Equal(t, "2024-03", series[1].Month, "2024-02 must be absent, not zero")
}

func TestBuildMonthlySeries_MixedWithinMonth(t *testing.T) {
	transactions := []model.Transaction{
		tx("2024-05-01", model.TypeIncome, "120.50"),
		tx("2024-05-09", model.TypeExpense, "20.25"),
		tx("2024-05-30", model.TypeExpense, "0.25"),
	}

	series := BuildMonthlySeries(transactions)
	require.Len(t, series, 1)
	assert.True(t, series[0].Value.Equal(decimal.RequireFromString("100.00")))
}

func TestMaxAbsValue(t *testing.T) {
	series := []SeriesPoint{
		{Month: "2024-01", Value: decimal.NewFromInt(200)},
		{Month: "2024-02", Value: decimal.NewFromInt(-350)},
	}
	assert.True(t, MaxAbsValue(series).Equal(decimal.NewFromInt(350)))
	assert.True(t, MaxAbsValue(nil).Equal(decimal.NewFromInt(1)), "floor of 1 for empty input")
}
