package api

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TokenStore holds the bearer token. Remembered tokens survive restarts in a
// file under the data directory; session tokens live only in memory, the
// analog of the web client's session storage.
type TokenStore struct {
	path    string
	session string
}

// NewTokenStore creates a TokenStore rooted at the data directory.
func NewTokenStore(dir string) *TokenStore {
	return &TokenStore{path: filepath.Join(dir, "token")}
}

// Token returns the current bearer token, or "" when logged out. The
// session token wins over a remembered one.
func (t *TokenStore) Token() string {
	if t.session != "" {
		return t.session
	}
	data, err := os.ReadFile(t.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Set stores a token. Any previous token is cleared first so the two
// storage modes never disagree.
func (t *TokenStore) Set(token string, remember bool) error {
	if err := t.Clear(); err != nil {
		return err
	}
	if !remember {
		t.session = token
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("creating token dir: %w", err)
	}
	if err := os.WriteFile(t.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("writing token: %w", err)
	}
	return nil
}

// Clear removes both the session and the remembered token.
func (t *TokenStore) Clear() error {
	t.session = ""
	if err := os.Remove(t.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing token: %w", err)
	}
	return nil
}
