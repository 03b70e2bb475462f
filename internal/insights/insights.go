// Package insights generates the dashboard's short advice lines from the
// current reporting window. Rules are an ordered, pluggable list so the
// heuristics can later be swapped for a real model without touching call
// sites.
package insights

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketfin-dev/pocketfin/internal/format"
	"github.com/pocketfin-dev/pocketfin/internal/model"
	"github.com/pocketfin-dev/pocketfin/internal/textfold"
)

// Input is everything a rule may inspect. Breakdown keeps the server's
// ranking, so Breakdown[0] is the top spend category.
type Input struct {
	Summary      model.Summary
	Transactions []model.Transaction
	Breakdown    []model.BreakdownEntry
	Now          time.Time
}

// Rule inspects the window and either fires one message or stays silent.
type Rule func(Input) (string, bool)

// Engine runs rules in priority order and caps the surfaced messages.
type Engine struct {
	Rules    []Rule
	Fallback string
}

const maxInsights = 3

// Build evaluates the rules in order, surfacing at most three messages.
// When no rule fires the fallback message is returned alone.
func (e Engine) Build(in Input) []string {
	var out []string
	for _, rule := range e.Rules {
		if msg, ok := rule(in); ok {
			out = append(out, msg)
			if len(out) == maxInsights {
				return out
			}
		}
	}
	if len(out) == 0 && e.Fallback != "" {
		out = append(out, e.Fallback)
	}
	return out
}

// DefaultEngine returns the stock heuristics in their fixed priority order.
func DefaultEngine() Engine {
	return Engine{
		Rules: []Rule{
			TopCategoryRule,
			CoffeeTrendRule,
			OverspendRule,
		},
		Fallback: "Dữ liệu hiện ổn định. Bạn có thể tạo thêm ngân sách để theo dõi chủ động hơn.",
	}
}

// TopCategoryRule reports the highest-spend category of the window.
func TopCategoryRule(in Input) (string, bool) {
	if len(in.Breakdown) == 0 {
		return "", false
	}
	top := in.Breakdown[0]
	return fmt.Sprintf("Danh mục chi cao nhất hiện tại: %s (%s).",
		top.Category, format.Currency(top.Spent)), true
}

// CoffeeTrendRule fires when coffee-like expenses rose against the previous
// calendar month. Matching is case- and diacritic-insensitive.
func CoffeeTrendRule(in Input) (string, bool) {
	currentKey := format.MonthKey(in.Now)
	firstOfMonth := time.Date(in.Now.Year(), in.Now.Month(), 1, 0, 0, 0, 0, in.Now.Location())
	previousKey := format.MonthKey(firstOfMonth.AddDate(0, -1, 0))

	byMonth := make(map[string]decimal.Decimal)
	for _, tx := range in.Transactions {
		if tx.Type != model.TypeExpense {
			continue
		}
		if !textfold.ContainsAny(tx.Description, "coffee", "cafe", "ca phe") {
			continue
		}
		key := tx.Month()
		byMonth[key] = byMonth[key].Add(tx.Amount)
	}

	current := byMonth[currentKey]
	previous := byMonth[previousKey]
	if !previous.IsPositive() || !current.GreaterThan(previous) {
		return "", false
	}

	delta := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(0)
	return fmt.Sprintf("Chi cà phê tháng này tăng %s%% so với tháng trước (%s -> %s).",
		delta, format.Currency(previous), format.Currency(current)), true
}

// OverspendRule warns when window expenses exceed window income.
func OverspendRule(in Input) (string, bool) {
	if !in.Summary.TotalExpense.GreaterThan(in.Summary.TotalIncome) {
		return "", false
	}
	return "Chi tiêu đang vượt thu nhập trong kỳ hiện tại. Nên rà soát danh mục không thiết yếu.", true
}
