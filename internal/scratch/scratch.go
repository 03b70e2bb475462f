// Package scratch wires the generic kvstore to each client-only feature:
// budgets, tags, accounts, chat history, and settings. One configuration per
// feature, all sharing the per-user key convention.
package scratch

import (
	"errors"
	"strings"

	"github.com/pocketfin-dev/pocketfin/internal/kvstore"
	"github.com/pocketfin-dev/pocketfin/internal/model"
)

// Storage key prefixes. Distinct per feature so no two features can collide
// on the same user.
const (
	budgetsPrefix  = "budgets"
	tagsPrefix     = "tags"
	accountsPrefix = "accounts"
	chatPrefix     = "chat"
	settingsPrefix = "settings"
)

// NewBudgetStore returns the per-user budget plan store.
func NewBudgetStore(dir string) *kvstore.Store[model.BudgetPlan] {
	return kvstore.NewStore(dir, budgetsPrefix,
		func(p model.BudgetPlan) string { return p.ID },
		func(p model.BudgetPlan, id string) model.BudgetPlan { p.ID = id; return p },
	)
}

// NewTagStore returns the per-user tag store.
func NewTagStore(dir string) *kvstore.Store[model.Tag] {
	return kvstore.NewStore(dir, tagsPrefix,
		func(t model.Tag) string { return t.ID },
		func(t model.Tag, id string) model.Tag { t.ID = id; return t },
	)
}

// NewAccountStore returns the per-user account store.
func NewAccountStore(dir string) *kvstore.Store[model.Account] {
	return kvstore.NewStore(dir, accountsPrefix,
		func(a model.Account) string { return a.ID },
		func(a model.Account, id string) model.Account { a.ID = id; return a },
	)
}

// NewChatStore returns the per-user chat history store. Chat usage is
// append-only; Upsert with a fresh message prepends, so List order is
// newest-first like every other feature.
func NewChatStore(dir string) *kvstore.Store[model.ChatMessage] {
	return kvstore.NewStore(dir, chatPrefix,
		func(m model.ChatMessage) string { return m.ID },
		func(m model.ChatMessage, id string) model.ChatMessage { m.ID = id; return m },
	)
}

// NewSettingsStore returns the per-user settings document store.
func NewSettingsStore(dir string) *kvstore.Object[model.Settings] {
	return kvstore.NewObject(dir, settingsPrefix, model.DefaultSettings)
}

// ErrTagNameRequired is returned when a tag is submitted without a name.
var ErrTagNameRequired = errors.New("tag name is required")

// ValidateTag checks the tag form constraints.
func ValidateTag(tag model.Tag) error {
	if strings.TrimSpace(tag.Name) == "" {
		return ErrTagNameRequired
	}
	return nil
}

// ErrAccountNameRequired is returned when an account is submitted without a name.
var ErrAccountNameRequired = errors.New("account name is required")

// ValidateAccount checks the account form constraints.
func ValidateAccount(account model.Account) error {
	if strings.TrimSpace(account.Name) == "" {
		return ErrAccountNameRequired
	}
	return nil
}
