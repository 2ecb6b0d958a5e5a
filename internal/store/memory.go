// internal/store/memory.go
//
// In-memory implementation of the session Store.
// Sessions are ephemeral: a running game lives here until it is replaced
// by a new game, sits idle past the sweep cutoff, or the process restarts.
// History lives in SQLite.
//
// Characteristics:
//   - Stores *game.Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs a mutation under the write lock, so two requests for the
//     same session never interleave inside the engine.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("store: session not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*game.Session, error)

	// Update runs fn on the stored session while holding exclusive access to it.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error

	// Delete discards a session. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Len reports how many sessions are held.
	Len() int

	// Sweep removes sessions not saved or updated since idleBefore, except
	// those keep reports true for, and returns the removed IDs. keep runs
	// with exclusive access to the store.
	Sweep(ctx context.Context, idleBefore time.Time, keep func(*game.Session) bool) []string
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex             // guards sessions and touched
	sessions map[string]*game.Session // keyed by Session.ID
	touched  map[string]time.Time     // last Save or Update
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{
		sessions: make(map[string]*game.Session),
		touched:  make(map[string]time.Time),
	}
}

func (m *memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	m.touched[s.ID] = time.Now()
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	m.touched[id] = time.Now()
	return fn(s)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	delete(m.touched, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *memory) Sweep(ctx context.Context, idleBefore time.Time, keep func(*game.Session) bool) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed []string
	for id, s := range m.sessions {
		if !m.touched[id].Before(idleBefore) {
			continue
		}
		if keep != nil && keep(s) {
			continue
		}
		delete(m.sessions, id)
		delete(m.touched, id)
		removed = append(removed, id)
	}
	return removed
}
