package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/pocketfin-dev/pocketfin/internal/model"
)

// TransactionFilters narrow a transaction listing. Zero values are omitted
// from the query string.
type TransactionFilters struct {
	StartDate  string
	EndDate    string
	CategoryID string
	Type       model.TransactionType
}

func (f TransactionFilters) query() string {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("start_date", f.StartDate)
	set("end_date", f.EndDate)
	set("category_id", f.CategoryID)
	set("transaction_type", string(f.Type))
	if encoded := q.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

// ReportWindow bounds a report query.
type ReportWindow struct {
	StartDate string
	EndDate   string
}

func (w ReportWindow) query() string {
	return TransactionFilters{StartDate: w.StartDate, EndDate: w.EndDate}.query()
}

// TransactionParams is the create/update payload.
type TransactionParams struct {
	Description string                `json:"description"`
	Amount      decimal.Decimal       `json:"amount"`
	Type        model.TransactionType `json:"transaction_type"`
	CategoryID  *int                  `json:"category_id"`
	Date        string                `json:"date"`
}

// ListCategories fetches the user's categories.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	err := c.request(ctx, http.MethodGet, "/finance/categories", nil, &out)
	return out, err
}

// CreateCategory adds a category.
func (c *Client) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	var out model.Category
	err := c.request(ctx, http.MethodPost, "/finance/categories", map[string]string{
		"name": name,
	}, &out)
	return out, err
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, id int, name string) (model.Category, error) {
	var out model.Category
	err := c.request(ctx, http.MethodPut, fmt.Sprintf("/finance/categories/%d", id), map[string]string{
		"name": name,
	}, &out)
	return out, err
}

// DeleteCategory removes a category. Transactions keep their stale
// category_id; labels fall back to "Uncategorized" client-side.
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/finance/categories/%d", id), nil, nil)
}

// ListTransactions fetches transactions matching the filters.
func (c *Client) ListTransactions(ctx context.Context, filters TransactionFilters) ([]model.Transaction, error) {
	var out []model.Transaction
	err := c.request(ctx, http.MethodGet, "/finance/transactions"+filters.query(), nil, &out)
	return out, err
}

// CreateTransaction adds a transaction.
func (c *Client) CreateTransaction(ctx context.Context, params TransactionParams) (model.Transaction, error) {
	var out model.Transaction
	err := c.request(ctx, http.MethodPost, "/finance/transactions", params, &out)
	return out, err
}

// UpdateTransaction replaces a transaction's fields.
func (c *Client) UpdateTransaction(ctx context.Context, id int, params TransactionParams) (model.Transaction, error) {
	var out model.Transaction
	err := c.request(ctx, http.MethodPut, fmt.Sprintf("/finance/transactions/%d", id), params, &out)
	return out, err
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id int) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/finance/transactions/%d", id), nil, nil)
}

// Summary fetches the income/expense/balance report for a window.
func (c *Client) Summary(ctx context.Context, window ReportWindow) (model.Summary, error) {
	var out model.Summary
	err := c.request(ctx, http.MethodGet, "/finance/reports/summary"+window.query(), nil, &out)
	return out, err
}

// CategoryBreakdown fetches per-category expense totals for a window,
// ranked by the server.
func (c *Client) CategoryBreakdown(ctx context.Context, window ReportWindow) ([]model.BreakdownEntry, error) {
	var out []model.BreakdownEntry
	err := c.request(ctx, http.MethodGet, "/finance/reports/category-breakdown"+window.query(), nil, &out)
	return out, err
}

// Cashflow fetches the time-bucketed cashflow series for a window.
func (c *Client) Cashflow(ctx context.Context, window ReportWindow) ([]model.CashflowPoint, error) {
	var out []model.CashflowPoint
	err := c.request(ctx, http.MethodGet, "/finance/reports/cashflow"+window.query(), nil, &out)
	return out, err
}
