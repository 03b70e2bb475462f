package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pocketfin-dev/pocketfin/internal/api"
	"github.com/pocketfin-dev/pocketfin/internal/finance"
	"github.com/pocketfin-dev/pocketfin/internal/format"
	"github.com/pocketfin-dev/pocketfin/internal/insights"
	"github.com/pocketfin-dev/pocketfin/internal/model"
	"github.com/pocketfin-dev/pocketfin/internal/palette"
	"github.com/pocketfin-dev/pocketfin/internal/prefs"
	"github.com/pocketfin-dev/pocketfin/internal/report"
	"github.com/pocketfin-dev/pocketfin/internal/ui"
)

func newDashboardCommand(a *app) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Summary, trend, breakdown, and insights for the window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey, err := a.requireAuth(cmd.Context())
			if err != nil {
				return err
			}
			a.applyPrefs(userKey)

			filters := finance.DefaultFilters(time.Now())
			if start != "" {
				filters.StartDate = start
			}
			if end != "" {
				filters.EndDate = end
			}

			data, err := finance.NewLoader(a.client).Load(cmd.Context(), filters)
			if err != nil {
				return err
			}
			renderDashboard(data, filters.StartDate, filters.EndDate)

			// The charts layout adds the server's bucketed cashflow trend.
			if a.prefs.Get(userKey).ReportLayout == prefs.LayoutCharts {
				points, err := a.client.Cashflow(cmd.Context(), api.ReportWindow{
					StartDate: filters.StartDate,
					EndDate:   filters.EndDate,
				})
				if err != nil {
					return err
				}
				renderCashflow(points)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "window start (YYYY-MM-DD, default first of month)")
	cmd.Flags().StringVar(&end, "end", "", "window end (YYYY-MM-DD, default today)")

	return cmd
}

func renderDashboard(data *finance.Data, start, end string) {
	fmt.Println(ui.Title().Render(fmt.Sprintf("Window %s to %s", start, end)))
	fmt.Printf("%s %s\n", ui.Muted().Render("Income: "), ui.Positive().Render(format.Currency(data.Summary.TotalIncome)))
	fmt.Printf("%s %s\n", ui.Muted().Render("Expense:"), ui.Negative().Render(format.Currency(data.Summary.TotalExpense)))
	fmt.Printf("%s %s\n", ui.Muted().Render("Balance:"), ui.Balance().Render(format.Currency(data.Summary.Balance)))

	if len(data.Series) > 0 {
		fmt.Println()
		fmt.Println(ui.Title().Render("Monthly net (last 6 months)"))
		renderSeries(data.Series)
	}

	if len(data.Breakdown) > 0 {
		fmt.Println()
		fmt.Println(ui.Title().Render("Spending by category"))
		for _, entry := range data.Breakdown {
			fmt.Printf("  %s %-20s %12s  %s\n",
				ui.Swatch(palette.ForLabel(entry.Category)),
				entry.Category,
				format.Currency(entry.Spent),
				ui.Muted().Render(format.Percent(entry.Share)))
		}
	}

	messages := insights.DefaultEngine().Build(insights.Input{
		Summary:      data.Summary,
		Transactions: data.Transactions,
		Breakdown:    toBreakdown(data.Breakdown),
		Now:          time.Now(),
	})
	if len(messages) > 0 {
		fmt.Println()
		fmt.Println(ui.Title().Render("AI insights"))
		for _, msg := range messages {
			fmt.Printf("  %s %s\n", ui.Accent().Render("→"), msg)
		}
	}
}

const seriesBarWidth = 24

// renderSeries draws the net-per-month bar chart, scaled to the largest
// absolute value in the window.
func renderSeries(series []report.SeriesPoint) {
	maxAbs := report.MaxAbsValue(series)
	for _, point := range series {
		width := point.Value.Abs().
			Div(maxAbs).
			Mul(decimal.NewFromInt(seriesBarWidth)).
			Round(0).IntPart()
		bar := strings.Repeat("█", int(width))
		style := ui.Positive()
		if point.Value.IsNegative() {
			style = ui.Negative()
		}
		fmt.Printf("  %s %-24s %s\n", point.Month, style.Render(bar), format.Currency(point.Value))
	}
}

func renderCashflow(points []model.CashflowPoint) {
	if len(points) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(ui.Title().Render("Cashflow"))
	for _, p := range points {
		fmt.Printf("  %-10s in %12s  out %12s  net %12s\n",
			p.Period,
			ui.Positive().Render(format.Currency(p.Income)),
			ui.Negative().Render(format.Currency(p.Expense)),
			ui.Balance().Render(format.Currency(p.Balance)))
	}
}

func toBreakdown(shares []report.CategoryShare) []model.BreakdownEntry {
	entries := make([]model.BreakdownEntry, len(shares))
	for i, s := range shares {
		entries[i] = s.BreakdownEntry
	}
	return entries
}
