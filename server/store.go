// Package server exposes the word-ladder game and solver over HTTP.
package server

import (
	"context"
	"errors"
	"sync"

	"github.com/katalvlaran/wordladder/game"
)

// ErrSessionNotFound is returned by Store.Get for unknown session IDs.
var ErrSessionNotFound = errors.New("server: session not found")

// Store defines the persistence interface for live play sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *game.Session) error

	// Get retrieves a session by ID; ErrSessionNotFound when missing.
	Get(ctx context.Context, id string) (*game.Session, error)
}

// memory is an in-memory map-based Store implementation. Sessions vanish on
// restart; durability for play-in-progress is not a goal.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*game.Session)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(_ context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s

	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(_ context.Context, id string) (*game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}

	return nil, ErrSessionNotFound
}
