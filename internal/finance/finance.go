// Package finance assembles the dashboard view model: one reporting window's
// categories, transactions, summary, and breakdown, fetched concurrently and
// joined client-side with labels, shares, and the monthly series.
package finance

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pocketfin-dev/pocketfin/internal/api"
	"github.com/pocketfin-dev/pocketfin/internal/format"
	"github.com/pocketfin-dev/pocketfin/internal/model"
	"github.com/pocketfin-dev/pocketfin/internal/report"
)

// UncategorizedLabel is the display label for transactions whose category is
// missing or was deleted server-side.
const UncategorizedLabel = "Uncategorized"

// ErrStale marks a load that was superseded by a newer one before it
// finished. Callers drop the result and keep whatever the newer load brings.
var ErrStale = errors.New("load superseded by a newer one")

// Fetcher is the slice of the API client the loader needs.
type Fetcher interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListTransactions(ctx context.Context, filters api.TransactionFilters) ([]model.Transaction, error)
	Summary(ctx context.Context, window api.ReportWindow) (model.Summary, error)
	CategoryBreakdown(ctx context.Context, window api.ReportWindow) ([]model.BreakdownEntry, error)
}

// Data is one fully joined reporting window.
type Data struct {
	Categories   []model.Category
	Transactions []model.Transaction
	Summary      model.Summary
	Breakdown    []report.CategoryShare
	Series       []report.SeriesPoint

	labels map[int]string
}

// CategoryLabel resolves a transaction's category reference to its display
// label. Nil references and references to deleted categories both fall back.
func (d *Data) CategoryLabel(categoryID *int) string {
	if categoryID == nil {
		return UncategorizedLabel
	}
	if label, ok := d.labels[*categoryID]; ok {
		return label
	}
	return UncategorizedLabel
}

// DefaultFilters is the window shown after login: first of the current month
// through today, all types, all categories.
func DefaultFilters(today time.Time) api.TransactionFilters {
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	return api.TransactionFilters{
		StartDate: format.InputDate(start),
		EndDate:   format.InputDate(today),
	}
}

// Loader issues window loads and drops the ones that lose a race. Each Load
// takes a generation number; when a newer Load has started by the time the
// fetches finish, the older result is discarded instead of clobbering the
// newer one.
type Loader struct {
	fetcher Fetcher
	gen     atomic.Uint64
}

// NewLoader creates a Loader over the given API surface.
func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load fetches one window. The four fetches run concurrently; the first
// error cancels the rest. A superseded load returns ErrStale.
func (l *Loader) Load(ctx context.Context, filters api.TransactionFilters) (*Data, error) {
	gen := l.gen.Add(1)
	window := api.ReportWindow{StartDate: filters.StartDate, EndDate: filters.EndDate}

	var (
		categories   []model.Category
		transactions []model.Transaction
		summary      model.Summary
		breakdown    []model.BreakdownEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = l.fetcher.ListCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = l.fetcher.ListTransactions(gctx, filters)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = l.fetcher.Summary(gctx, window)
		return err
	})
	g.Go(func() error {
		var err error
		breakdown, err = l.fetcher.CategoryBreakdown(gctx, window)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if l.gen.Load() != gen {
		return nil, ErrStale
	}

	labels := make(map[int]string, len(categories))
	for _, c := range categories {
		labels[c.ID] = c.Name
	}
	return &Data{
		Categories:   categories,
		Transactions: transactions,
		Summary:      summary,
		Breakdown:    report.ApplyShares(breakdown),
		Series:       report.BuildMonthlySeries(transactions),
		labels:       labels,
	}, nil
}
