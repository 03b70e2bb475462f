package scratch

import (
	"fmt"
	"time"

	"github.com/pocketfin-dev/pocketfin/internal/model"
)

// Bundle is the portable snapshot of one user's scratch data, matching the
// settings screen's export format.
type Bundle struct {
	ExportedAt time.Time          `json:"exported_at"`
	Email      string             `json:"email"`
	Settings   model.Settings     `json:"settings"`
	Budgets    []model.BudgetPlan `json:"budgets"`
	Tags       []model.Tag        `json:"tags"`
	Accounts   []model.Account    `json:"accounts"`
}

// Export snapshots a user's settings, budgets, tags, and accounts.
func Export(dir, userKey string, now time.Time) Bundle {
	return Bundle{
		ExportedAt: now,
		Email:      userKey,
		Settings:   NewSettingsStore(dir).Get(userKey),
		Budgets:    NewBudgetStore(dir).List(userKey),
		Tags:       NewTagStore(dir).List(userKey),
		Accounts:   NewAccountStore(dir).List(userKey),
	}
}

// Import replaces a user's scratch data with the bundle's contents.
// Last write wins; there is no merging.
func Import(dir, userKey string, bundle Bundle) error {
	if err := NewSettingsStore(dir).Put(userKey, bundle.Settings); err != nil {
		return fmt.Errorf("importing settings: %w", err)
	}
	if err := NewBudgetStore(dir).Replace(userKey, bundle.Budgets); err != nil {
		return fmt.Errorf("importing budgets: %w", err)
	}
	if err := NewTagStore(dir).Replace(userKey, bundle.Tags); err != nil {
		return fmt.Errorf("importing tags: %w", err)
	}
	if err := NewAccountStore(dir).Replace(userKey, bundle.Accounts); err != nil {
		return fmt.Errorf("importing accounts: %w", err)
	}
	return nil
}
