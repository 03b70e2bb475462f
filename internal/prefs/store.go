package prefs

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/pocketfin-dev/pocketfin/internal/kvstore"
)

// Change is the notification payload published on every save.
type Change struct {
	UserKey string
	Prefs   Preferences
}

// Listener receives preference changes. Consumers filter on UserKey
// themselves: a listener for one identity must ignore changes for another,
// so switching accounts never leaks one user's theme into the other's view.
type Listener func(Change)

// Store persists one normalized preference record per user key and
// broadcasts every save to subscribed listeners. Injected where needed
// instead of living behind a global event name.
type Store struct {
	obj *kvstore.Object[Preferences]
	log zerolog.Logger

	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
}

// NewStore creates a preference store rooted at the data directory.
func NewStore(dir string, log zerolog.Logger) *Store {
	return &Store{
		obj:       kvstore.NewObject(dir, "ui_prefs", Default),
		log:       log,
		listeners: make(map[int]Listener),
	}
}

// Get returns the normalized record for a user key ("" means guest).
// Missing or malformed storage yields the default record; a partially
// invalid record comes back fully normalized. Never returns an error.
func (s *Store) Get(userKey string) Preferences {
	return Normalize(s.obj.Get(userKey))
}

// Save normalizes, persists synchronously, then publishes the change. A Get
// in the same turn observes the update. Persistence failures are logged and
// dropped; the broadcast still goes out so views stay consistent with the
// in-memory record.
func (s *Store) Save(userKey string, p Preferences) Preferences {
	normalized := Normalize(p)
	if err := s.obj.Put(userKey, normalized); err != nil {
		s.log.Warn().Err(err).Str("user", userKey).Msg("dropping ui prefs write")
	}
	s.publish(Change{UserKey: userOrGuest(userKey), Prefs: normalized})
	return normalized
}

// Subscribe registers a listener and returns its unsubscribe func. A
// consumer subscribes once per mount and must unsubscribe on unmount: a
// listener never fires after its unsubscribe returns.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) publish(change Change) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(change)
	}
}

func userOrGuest(userKey string) string {
	if userKey == "" {
		return kvstore.GuestKey
	}
	return userKey
}
