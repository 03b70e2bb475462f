package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newWidgetStore(t *testing.T) *Store[widget] {
	t.Helper()
	return NewStore(t.TempDir(), "widgets",
		func(w widget) string { return w.ID },
		func(w widget, id string) widget { w.ID = id; return w },
	)
}

func TestListEmpty(t *testing.T) {
	s := newWidgetStore(t)
	assert.Empty(t, s.List("a@example.com"))
}

func TestUpsertNewPrepends(t *testing.T) {
	s := newWidgetStore(t)

	first, err := s.Upsert("a@example.com", widget{Name: "first"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID, "fresh records get generated IDs")

	second, err := s.Upsert("a@example.com", widget{Name: "second"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got := s.List("a@example.com")
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Name, "newest first")
	assert.Equal(t, "first", got[1].Name)
}

func TestUpsertExistingReplacesInPlace(t *testing.T) {
	s := newWidgetStore(t)

	a, err := s.Upsert(GuestKey, widget{Name: "a"})
	require.NoError(t, err)
	b, err := s.Upsert(GuestKey, widget{Name: "b"})
	require.NoError(t, err)

	a.Name = "a-edited"
	_, err = s.Upsert(GuestKey, a)
	require.NoError(t, err)

	got := s.List(GuestKey)
	require.Len(t, got, 2)
	assert.Equal(t, b.ID, got[0].ID, "edit must not move the record")
	assert.Equal(t, "a-edited", got[1].Name)
}

func TestRemove(t *testing.T) {
	s := newWidgetStore(t)

	a, err := s.Upsert(GuestKey, widget{Name: "a"})
	require.NoError(t, err)
	_, err = s.Upsert(GuestKey, widget{Name: "b"})
	require.NoError(t, err)

	require.NoError(t, s.Remove(GuestKey, a.ID))
	got := s.List(GuestKey)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Name)
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	s := newWidgetStore(t)

	_, err := s.Upsert(GuestKey, widget{Name: "keep"})
	require.NoError(t, err)

	require.NoError(t, s.Remove(GuestKey, "no-such-id"))
	assert.Len(t, s.List(GuestKey), 1)
}

func TestUsersAreIsolated(t *testing.T) {
	s := newWidgetStore(t)

	_, err := s.Upsert("a@example.com", widget{Name: "mine"})
	require.NoError(t, err)

	assert.Empty(t, s.List("b@example.com"))
	assert.Len(t, s.List("a@example.com"), 1)
}

func TestCorruptFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, "widgets",
		func(w widget) string { return w.ID },
		func(w widget, id string) widget { w.ID = id; return w },
	)

	path := filepath.Join(dir, FileName("widgets", GuestKey))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Empty(t, s.List(GuestKey))

	// The store stays usable: the next write replaces the corrupt file.
	_, err := s.Upsert(GuestKey, widget{Name: "fresh"})
	require.NoError(t, err)
	assert.Len(t, s.List(GuestKey), 1)
}

func TestObjectFallback(t *testing.T) {
	dir := t.TempDir()
	o := NewObject(dir, "settings", func() widget { return widget{Name: "default"} })

	assert.Equal(t, "default", o.Get(GuestKey).Name)
	assert.False(t, o.Exists(GuestKey))

	require.NoError(t, o.Put(GuestKey, widget{Name: "custom"}))
	assert.True(t, o.Exists(GuestKey))
	assert.Equal(t, "custom", o.Get(GuestKey).Name)
}

func TestObjectMalformedFallsBack(t *testing.T) {
	dir := t.TempDir()
	o := NewObject(dir, "settings", func() widget { return widget{Name: "default"} })

	path := filepath.Join(dir, FileName("settings", GuestKey))
	require.NoError(t, os.WriteFile(path, []byte("[[["), 0o644))
	assert.Equal(t, "default", o.Get(GuestKey).Name)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "budgets_guest.json", FileName("budgets", ""))
	assert.Equal(t, "budgets_guest.json", FileName("budgets", GuestKey))
	assert.Equal(t, "tags_a_at_example.com.json", FileName("tags", "a@example.com"))
	assert.NotEqual(t, FileName("tags", "a/b"), "tags_a/b.json", "path separators must be sanitized")
}
