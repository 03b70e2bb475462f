package finance

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketfin-dev/pocketfin/internal/api"
	"github.com/pocketfin-dev/pocketfin/internal/model"
)

// fakeFetcher serves canned data. When block is non-nil, ListCategories
// signals started and then waits on block before answering, letting tests
// stage a race between two loads.
type fakeFetcher struct {
	categories   []model.Category
	transactions []model.Transaction
	summary      model.Summary
	breakdown    []model.BreakdownEntry

	block   chan struct{}
	started chan struct{}
	calls   atomic.Int32
}

// Only the first ListCategories call blocks, so a second load can finish
// while the first is still mid-flight.
func (f *fakeFetcher) ListCategories(ctx context.Context) ([]model.Category, error) {
	if f.block != nil && f.calls.Add(1) == 1 {
		close(f.started)
		<-f.block
	}
	return f.categories, nil
}

func (f *fakeFetcher) ListTransactions(ctx context.Context, _ api.TransactionFilters) ([]model.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeFetcher) Summary(ctx context.Context, _ api.ReportWindow) (model.Summary, error) {
	return f.summary, nil
}

func (f *fakeFetcher) CategoryBreakdown(ctx context.Context, _ api.ReportWindow) ([]model.BreakdownEntry, error) {
	return f.breakdown, nil
}

func intPtr(v int) *int { return &v }

func TestLoadJoinsWindow(t *testing.T) {
	fetcher := &fakeFetcher{
		categories: []model.Category{{ID: 1, Name: "Ăn uống"}, {ID: 2, Name: "Di chuyển"}},
		transactions: []model.Transaction{
			{ID: 10, Amount: decimal.NewFromInt(50000), Type: model.TypeExpense, CategoryID: intPtr(1), Date: "2024-03-02"},
			{ID: 11, Amount: decimal.NewFromInt(900000), Type: model.TypeIncome, Date: "2024-03-01"},
		},
		summary: model.Summary{
			TotalIncome:  decimal.NewFromInt(900000),
			TotalExpense: decimal.NewFromInt(50000),
			Balance:      decimal.NewFromInt(850000),
		},
		breakdown: []model.BreakdownEntry{
			{Category: "Ăn uống", Spent: decimal.NewFromInt(30000)},
			{Category: "Di chuyển", Spent: decimal.NewFromInt(20000)},
		},
	}

	data, err := NewLoader(fetcher).Load(context.Background(), api.TransactionFilters{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})
	require.NoError(t, err)

	require.Len(t, data.Breakdown, 2)
	assert.True(t, data.Breakdown[0].Share.Equal(decimal.RequireFromString("0.6")))
	require.Len(t, data.Series, 1)
	assert.Equal(t, "2024-03", data.Series[0].Month)
	assert.True(t, data.Series[0].Value.Equal(decimal.NewFromInt(850000)))

	assert.Equal(t, "Ăn uống", data.CategoryLabel(intPtr(1)))
	assert.Equal(t, UncategorizedLabel, data.CategoryLabel(nil))
	assert.Equal(t, UncategorizedLabel, data.CategoryLabel(intPtr(99)), "deleted category id")
}

func TestLoadDiscardsStaleResult(t *testing.T) {
	fetcher := &fakeFetcher{
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	loader := NewLoader(fetcher)

	type outcome struct {
		data *Data
		err  error
	}
	first := make(chan outcome, 1)
	go func() {
		data, err := loader.Load(context.Background(), api.TransactionFilters{})
		first <- outcome{data, err}
	}()

	// Wait until the first load is mid-flight, then let a second load win.
	<-fetcher.started
	_, err := loader.Load(context.Background(), api.TransactionFilters{})
	require.NoError(t, err)

	close(fetcher.block)
	got := <-first
	assert.ErrorIs(t, got.err, ErrStale)
	assert.Nil(t, got.data)
}

func TestDefaultFilters(t *testing.T) {
	today := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	filters := DefaultFilters(today)
	assert.Equal(t, "2024-03-01", filters.StartDate)
	assert.Equal(t, "2024-03-15", filters.EndDate)
	assert.Empty(t, filters.CategoryID)
	assert.Empty(t, string(filters.Type))
}
