package commands

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketfin-dev/pocketfin/internal/kvstore"
	"github.com/pocketfin-dev/pocketfin/internal/model"
	"github.com/pocketfin-dev/pocketfin/internal/scratch"
)

// Scratch-data commands work offline as guest; tests drive the real command
// tree against a temp profile and assert on the persisted state.

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestTagsAddAndRemove(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runCommand(t, "--profile", dir, "tags", "add", "groceries"))

	store := scratch.NewTagStore(filepath.Join(dir, "data"))
	tags := store.List(kvstore.GuestKey)
	require.Len(t, tags, 1)
	assert.Equal(t, "groceries", tags[0].Name)
	assert.NotEmpty(t, tags[0].Color, "color is assigned from the name")

	require.NoError(t, runCommand(t, "--profile", dir, "tags", "rm", tags[0].ID))
	assert.Empty(t, store.List(kvstore.GuestKey))
}

func TestTagsAddRequiresName(t *testing.T) {
	dir := t.TempDir()
	err := runCommand(t, "--profile", dir, "tags", "add", "   ")
	require.Error(t, err)

	assert.Empty(t, scratch.NewTagStore(filepath.Join(dir, "data")).List(kvstore.GuestKey))
}

func TestBudgetsLifecycle(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runCommand(t, "--profile", dir,
		"budgets", "add", "--name", "Ăn uống", "--amount", "2000000", "--cycle", "monthly"))

	store := scratch.NewBudgetStore(filepath.Join(dir, "data"))
	plans := store.List(kvstore.GuestKey)
	require.Len(t, plans, 1)
	assert.Equal(t, model.BudgetActive, plans[0].Status)
	assert.True(t, plans[0].Amount.Equal(decimal.NewFromInt(2000000)))

	require.NoError(t, runCommand(t, "--profile", dir, "budgets", "pause", plans[0].ID))
	plans = store.List(kvstore.GuestKey)
	require.Len(t, plans, 1)
	assert.Equal(t, model.BudgetPaused, plans[0].Status)

	require.NoError(t, runCommand(t, "--profile", dir, "budgets", "rm", plans[0].ID))
	assert.Empty(t, store.List(kvstore.GuestKey))
}

func TestBudgetsAddRejectsZeroAmount(t *testing.T) {
	dir := t.TempDir()
	err := runCommand(t, "--profile", dir,
		"budgets", "add", "--name", "Empty", "--amount", "0")
	require.Error(t, err)
}
