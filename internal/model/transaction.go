package model

import (
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is one server-owned ledger row. Date is a calendar date in
// "YYYY-MM-DD" form with no time component; the wire format and every
// client-side comparison work on that string directly.
type Transaction struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"transaction_type"`
	CategoryID  *int            `json:"category_id"`
	Date        string          `json:"date"`
}

// Month returns the "YYYY-MM" bucket key for the transaction date.
func (t Transaction) Month() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}

// Category is a weak reference target: deleting one never cascades to
// transactions, their category_id simply goes stale.
type Category struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	UserID int    `json:"user_id"`
}

// User is the authenticated identity returned by the auth/me endpoint.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// Summary is the server's income/expense/balance report over a date window.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// BreakdownEntry is one row of the per-category expense report. The server
// determines ranking; the client only attaches shares.
type BreakdownEntry struct {
	Category string          `json:"category"`
	Spent    decimal.Decimal `json:"spent"`
}

// CashflowPoint is one time-bucketed sample of the cashflow trend report.
type CashflowPoint struct {
	Period  string          `json:"period"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}
