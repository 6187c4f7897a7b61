// Package favorites keeps the user's pinned tracks. The list lives in
// memory behind a mutex and is written through to durable storage on every
// mutation; background fetches never touch it.
package favorites

import (
	"fmt"
	"sync"
	"time"

	"github.com/crate-fm/crate/db"
	"github.com/crate-fm/crate/models"
)

// Store is the favorites list. Mutations are synchronous and persist
// before returning.
type Store struct {
	mu   sync.RWMutex
	db   *db.DB
	list []models.FavoriteTrack
	now  func() time.Time
}

// New restores the favorites list from the database.
func New(database *db.DB) (*Store, error) {
	list, err := database.LoadFavorites()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	return &Store{
		db:   database,
		list: list,
		now:  time.Now,
	}, nil
}

// Add pins a track, stamping AddedAt at insertion. Adding a track whose
// key is already present is a no-op.
func (s *Store) Add(track models.FavoriteTrack) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := track.Key()
	for _, f := range s.list {
		if f.Key() == key {
			return nil
		}
	}

	track.AddedAt = s.now().UnixMilli()
	s.list = append(s.list, track)
	return s.db.SaveFavorites(s.list)
}

// Remove unpins the track with the given key. Removing an absent key
// leaves the store unchanged.
func (s *Store) Remove(key models.TrackKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.list[:0]
	for _, f := range s.list {
		if f.Key() != key {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(s.list) {
		return nil
	}
	s.list = kept
	return s.db.SaveFavorites(s.list)
}

// IsFavorite reports whether a track with the given key is pinned.
func (s *Store) IsFavorite(key models.TrackKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.list {
		if f.Key() == key {
			return true
		}
	}
	return false
}

// List returns the favorites in insertion order.
func (s *Store) List() []models.FavoriteTrack {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FavoriteTrack, len(s.list))
	copy(out, s.list)
	return out
}

// Len returns the number of pinned tracks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.list)
}
