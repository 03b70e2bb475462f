package scratch

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketfin-dev/pocketfin/internal/kvstore"
	"github.com/pocketfin-dev/pocketfin/internal/model"
)

func TestTagLifecycle(t *testing.T) {
	dir := t.TempDir()
	tags := NewTagStore(dir)

	created, err := tags.Upsert("a@example.com", model.Tag{Name: "Công việc", Color: "#1565c0"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	created.Color = "#000000"
	_, err = tags.Upsert("a@example.com", created)
	require.NoError(t, err)

	got := tags.List("a@example.com")
	require.Len(t, got, 1)
	assert.Equal(t, "#000000", got[0].Color)

	require.NoError(t, tags.Remove("a@example.com", created.ID))
	assert.Empty(t, tags.List("a@example.com"))
}

func TestDeleteAbsentTagIsNoOp(t *testing.T) {
	dir := t.TempDir()
	tags := NewTagStore(dir)

	_, err := tags.Upsert(kvstore.GuestKey, model.Tag{Name: "keep"})
	require.NoError(t, err)

	require.NoError(t, tags.Remove(kvstore.GuestKey, "not-there"))
	assert.Len(t, tags.List(kvstore.GuestKey), 1, "list unchanged")
}

func TestFeaturesDoNotCollide(t *testing.T) {
	dir := t.TempDir()

	_, err := NewTagStore(dir).Upsert(kvstore.GuestKey, model.Tag{Name: "t"})
	require.NoError(t, err)
	_, err = NewAccountStore(dir).Upsert(kvstore.GuestKey, model.Account{Name: "Cash"})
	require.NoError(t, err)

	assert.Len(t, NewTagStore(dir).List(kvstore.GuestKey), 1)
	assert.Len(t, NewAccountStore(dir).List(kvstore.GuestKey), 1)
	assert.Empty(t, NewBudgetStore(dir).List(kvstore.GuestKey))
}

func TestSettingsDefaults(t *testing.T) {
	dir := t.TempDir()
	settings := NewSettingsStore(dir)

	got := settings.Get("nobody@example.com")
	assert.Equal(t, model.DefaultSettings(), got)

	got.CloudSync = true
	require.NoError(t, settings.Put("nobody@example.com", got))
	assert.True(t, settings.Get("nobody@example.com").CloudSync)
}

func TestValidateTag(t *testing.T) {
	assert.NoError(t, ValidateTag(model.Tag{Name: "ok"}))
	assert.ErrorIs(t, ValidateTag(model.Tag{Name: "  "}), ErrTagNameRequired)
}

func TestValidateAccount(t *testing.T) {
	assert.NoError(t, ValidateAccount(model.Account{Name: "Ví chính"}))
	assert.ErrorIs(t, ValidateAccount(model.Account{}), ErrAccountNameRequired)
}

func TestExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	user := "a@example.com"

	_, err := NewBudgetStore(dir).Upsert(user, model.BudgetPlan{
		Name:      "Groceries",
		Amount:    decimal.NewFromInt(500),
		Cycle:     model.CycleMonthly,
		Threshold: 80,
		Status:    model.BudgetActive,
	})
	require.NoError(t, err)
	_, err = NewTagStore(dir).Upsert(user, model.Tag{Name: "t1"})
	require.NoError(t, err)

	bundle := Export(dir, user, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, user, bundle.Email)
	require.Len(t, bundle.Budgets, 1)
	require.Len(t, bundle.Tags, 1)

	other := t.TempDir()
	require.NoError(t, Import(other, user, bundle))
	assert.Len(t, NewBudgetStore(other).List(user), 1)
	assert.Len(t, NewTagStore(other).List(user), 1)
	assert.Equal(t, bundle.Settings, NewSettingsStore(other).Get(user))
}

func TestChatAppendOrder(t *testing.T) {
	dir := t.TempDir()
	chat := NewChatStore(dir)

	_, err := chat.Upsert(kvstore.GuestKey, model.ChatMessage{Role: model.RoleUser, Content: "hi", CreatedAt: time.Now()})
	require.NoError(t, err)
	_, err = chat.Upsert(kvstore.GuestKey, model.ChatMessage{Role: model.RoleAssistant, Content: "hello", CreatedAt: time.Now()})
	require.NoError(t, err)

	got := chat.List(kvstore.GuestKey)
	require.Len(t, got, 2)
	assert.Equal(t, "hello", got[0].Content, "newest first")
}
