package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetCycle is the nominal period a budget plan covers when no explicit
// date range is set.
type BudgetCycle string

const (
	CycleWeekly  BudgetCycle = "weekly"
	CycleMonthly BudgetCycle = "monthly"
	CycleYearly  BudgetCycle = "yearly"
	CycleOneTime BudgetCycle = "one-time"
)

// BudgetStatus is the lifecycle state of a budget plan.
type BudgetStatus string

const (
	BudgetActive    BudgetStatus = "active"
	BudgetPaused    BudgetStatus = "paused"
	BudgetCompleted BudgetStatus = "completed"
)

// BudgetPlan is a client-only budget target. It is never sent to the server;
// persistence is per-user local storage, last write wins.
type BudgetPlan struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	CategoryIDs []string        `json:"categoryIds"` // empty = all categories
	Amount      decimal.Decimal `json:"amount"`
	Cycle       BudgetCycle     `json:"cycle"`
	StartDate   string          `json:"startDate"` // "YYYY-MM-DD", "" = unbounded
	EndDate     string          `json:"endDate"`   // "YYYY-MM-DD", "" = unbounded
	Threshold   int             `json:"threshold"` // alert percentage, 1..100
	Status      BudgetStatus    `json:"status"`
}

// Tag is a client-only label usable in free-text queries.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Account is a client-only money pot for display purposes; no relationship
// to transactions is enforced.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    string          `json:"type"` // cash, bank, ewallet, ...
	Number  string          `json:"number"`
	Balance decimal.Decimal `json:"balance"`
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry of the local demo chat history. Append-only.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Settings are the per-user notification and privacy toggles. Client-only.
type Settings struct {
	PushNotifications    bool `json:"pushNotifications"`
	EmailNotifications   bool `json:"emailNotifications"`
	ThresholdAlerts      bool `json:"thresholdAlerts"`
	CloudSync            bool `json:"cloudSync"`
	AIOptIn              bool `json:"aiOptIn"`
	KeepPromptLogs       bool `json:"keepPromptLogs"`
	EstimatedMonthlyCost int  `json:"estimatedMonthlyCost"`
}

// DefaultSettings returns the toggle set a fresh profile starts with.
func DefaultSettings() Settings {
	return Settings{
		PushNotifications:    true,
		EmailNotifications:   true,
		ThresholdAlerts:      true,
		CloudSync:            false,
		AIOptIn:              true,
		KeepPromptLogs:       true,
		EstimatedMonthlyCost: 3,
	}
}
