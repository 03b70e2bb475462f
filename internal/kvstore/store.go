// Package kvstore is the dumb persistence layer behind every client-only
// feature: one JSON document per (feature, user) pair under the profile's
// data directory. It performs no validation; callers validate before writing.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// GuestKey is the fallback identity used whenever no user is authenticated.
const GuestKey = "guest"

// Store persists an ordered sequence of records per user key. Generic over
// the record shape; each feature instantiates it with its own key prefix and
// ID accessors.
type Store[T any] struct {
	dir    string
	prefix string
	id     func(T) string
	withID func(T, string) T
}

// NewStore creates a store rooted at dir. The id func reads a record's ID
// and withID returns a copy carrying a fresh one.
func NewStore[T any](dir, prefix string, id func(T) string, withID func(T, string) T) *Store[T] {
	return &Store[T]{dir: dir, prefix: prefix, id: id, withID: withID}
}

// List returns the persisted records for a user, most recently created
// first. Missing files and unparseable content both degrade to an empty
// list, never an error.
func (s *Store[T]) List(userKey string) []T {
	data, err := os.ReadFile(s.path(userKey))
	if err != nil {
		return nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

// Upsert inserts or replaces a record and persists synchronously. A record
// without an ID gets a fresh one and is prepended; a known ID replaces the
// matching record in place. The stored record is returned.
func (s *Store[T]) Upsert(userKey string, record T) (T, error) {
	records := s.List(userKey)

	id := s.id(record)
	if id == "" {
		record = s.withID(record, uuid.NewString())
		records = append([]T{record}, records...)
		return record, s.write(userKey, records)
	}

	replaced := false
	for i, existing := range records {
		if s.id(existing) == id {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append([]T{record}, records...)
	}
	return record, s.write(userKey, records)
}

// Replace overwrites the whole sequence for a user. Used by bulk import;
// normal mutation goes through Upsert/Remove.
func (s *Store[T]) Replace(userKey string, records []T) error {
	return s.write(userKey, records)
}

// Remove deletes the record with the given ID. Removing an absent ID is a
// no-op, not an error.
func (s *Store[T]) Remove(userKey, id string) error {
	records := s.List(userKey)
	kept := records[:0]
	for _, r := range records {
		if s.id(r) != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return s.write(userKey, kept)
}

func (s *Store[T]) write(userKey string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s records: %w", s.prefix, err)
	}
	path := s.path(userKey)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s records: %w", s.prefix, err)
	}
	return nil
}

func (s *Store[T]) path(userKey string) string {
	return filepath.Join(s.dir, FileName(s.prefix, userKey))
}

// Object persists a single record per user key, with a caller-supplied
// default for missing or malformed storage. Used by features that keep one
// document rather than a list (settings, UI preferences).
type Object[T any] struct {
	dir      string
	prefix   string
	fallback func() T
}

// NewObject creates a single-document store rooted at dir.
func NewObject[T any](dir, prefix string, fallback func() T) *Object[T] {
	return &Object[T]{dir: dir, prefix: prefix, fallback: fallback}
}

// Get reads the persisted document for a user, or the fallback on any
// missing or malformed storage. Never returns an error.
func (o *Object[T]) Get(userKey string) T {
	data, err := os.ReadFile(o.path(userKey))
	if err != nil {
		return o.fallback()
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return o.fallback()
	}
	return value
}

// Exists reports whether a document has been persisted for the user.
func (o *Object[T]) Exists(userKey string) bool {
	_, err := os.Stat(o.path(userKey))
	return !errors.Is(err, fs.ErrNotExist)
}

// Put persists the document synchronously, so a Get in the same turn
// observes the update.
func (o *Object[T]) Put(userKey string, value T) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", o.prefix, err)
	}
	path := o.path(userKey)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", o.prefix, err)
	}
	return nil
}

func (o *Object[T]) path(userKey string) string {
	return filepath.Join(o.dir, FileName(o.prefix, userKey))
}

// FileName maps a (feature prefix, user key) pair to a stable file name.
// The user key is typically an email; characters outside a safe set are
// replaced so distinct keys cannot collide into path separators.
func FileName(prefix, userKey string) string {
	if userKey == "" {
		userKey = GuestKey
	}
	var b strings.Builder
	for _, r := range userKey {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		case r == '@':
			b.WriteString("_at_")
		default:
			b.WriteRune('_')
		}
	}
	return prefix + "_" + b.String() + ".json"
}
