package application

import (
	"fmt"
	"sync"

	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

// SessionDeps carries everything a new session needs. Favorites storage and
// the audio transport are per-owner, so they come in as factories.
type SessionDeps struct {
	Generator    *Generator
	Content      domain.ContentPort
	NewFavorites func(owner string) domain.FavoritesPort
	NewTransport func(owner string) domain.AudioTransportPort

	AudioBaseURL  string
	AudioReciter  string
	DefaultFilter domain.ContentFilter
}

// Session is one owner's engine state: the main feed, the favorites
// projection and the playback slot. All state transitions for a session run
// under its lock, mirroring the single event queue the engine assumes.
type Session struct {
	mu sync.Mutex

	Feed      *Feed
	Player    *Player
	Favorites *FavoritesFeed
	Store     domain.FavoritesPort
}

// Lock serializes access to the session's state.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// Registry hands out sessions by owner id, creating them on first use.
type Registry struct {
	deps SessionDeps

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty session registry.
func NewRegistry(deps SessionDeps) *Registry {
	return &Registry{
		deps:     deps,
		sessions: make(map[string]*Session),
	}
}

// Get returns the owner's session, creating and initializing it on demand.
func (r *Registry) Get(owner string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[owner]; ok {
		return s, nil
	}

	feed, err := NewFeed(r.deps.Generator, r.deps.DefaultFilter)
	if err != nil {
		return nil, fmt.Errorf("initialize feed: %w", err)
	}

	store := r.deps.NewFavorites(owner)
	s := &Session{
		Feed:      feed,
		Player:    NewPlayer(r.deps.NewTransport(owner), r.deps.AudioBaseURL, r.deps.AudioReciter),
		Favorites: NewFavoritesFeed(store, r.deps.Content),
		Store:     store,
	}

	r.sessions[owner] = s
	return s, nil
}
