// Package catalog holds the in-memory collections of songs, musicians,
// set lists, and rehearsals that every planner component reads through.
package catalog

import (
	"fmt"
	"sync"

	"github.com/starford/cantor/internal/apperr"
	"github.com/starford/cantor/internal/models"
)

// Store owns the canonical catalog collections. It is constructed
// explicitly and passed by reference, so tests and multi-tenant callers
// can hold independent catalogs.
//
// Concurrency model: a single RWMutex guards all four collections.
// Accessors return copies, so a long computation (like set list
// generation) works on one consistent snapshot while a reload replaces
// the live data.
type Store struct {
	mu         sync.RWMutex
	songs      []models.Song
	musicians  []models.Musician
	setLists   []models.SetList
	rehearsals []models.Rehearsal
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a freshly loaded catalog wholesale. Generated set
// lists registered since the last load are preserved when the seed
// carries no set lists of its own.
func (s *Store) Replace(seed Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.songs = seed.Songs
	s.musicians = seed.Musicians
	if len(seed.SetLists) > 0 {
		s.setLists = seed.SetLists
	}
	s.rehearsals = seed.Rehearsals
}

// Songs returns a snapshot of all songs in catalog order.
func (s *Store) Songs() []models.Song {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Song(nil), s.songs...)
}

// Song returns the song with the given id.
func (s *Store) Song(id string) (models.Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, song := range s.songs {
		if song.ID == id {
			return song, nil
		}
	}
	return models.Song{}, fmt.Errorf("song %q: %w", id, apperr.ErrNotFound)
}

// AddSongs appends songs to the catalog, rejecting duplicate ids.
func (s *Store) AddSongs(songs ...models.Song) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, song := range songs {
		for _, existing := range s.songs {
			if existing.ID == song.ID {
				return fmt.Errorf("song %q: %w", song.ID, apperr.ErrAlreadyExists)
			}
		}
		s.songs = append(s.songs, song)
	}
	return nil
}

// Musicians returns a snapshot of all musicians.
func (s *Store) Musicians() []models.Musician {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Musician(nil), s.musicians...)
}

// Musician returns the musician with the given id.
func (s *Store) Musician(id string) (models.Musician, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.musicians {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Musician{}, fmt.Errorf("musician %q: %w", id, apperr.ErrNotFound)
}

// AddMusicians appends musicians to the catalog, rejecting duplicate ids.
func (s *Store) AddMusicians(musicians ...models.Musician) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range musicians {
		for _, existing := range s.musicians {
			if existing.ID == m.ID {
				return fmt.Errorf("musician %q: %w", m.ID, apperr.ErrAlreadyExists)
			}
		}
		s.musicians = append(s.musicians, m)
	}
	return nil
}

// SetLists returns a snapshot of all set lists.
func (s *Store) SetLists() []models.SetList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SetList(nil), s.setLists...)
}

// SetList returns the set list with the given id.
func (s *Store) SetList(id string) (models.SetList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sl := range s.setLists {
		if sl.ID == id {
			return sl, nil
		}
	}
	return models.SetList{}, fmt.Errorf("set list %q: %w", id, apperr.ErrNotFound)
}

// AddSetList registers a set list (typically a freshly generated draft).
func (s *Store) AddSetList(sl models.SetList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.setLists {
		if existing.ID == sl.ID {
			return fmt.Errorf("set list %q: %w", sl.ID, apperr.ErrAlreadyExists)
		}
	}
	s.setLists = append(s.setLists, sl)
	return nil
}

// Rehearsals returns a snapshot of all rehearsals.
func (s *Store) Rehearsals() []models.Rehearsal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Rehearsal(nil), s.rehearsals...)
}

// AddRehearsals appends rehearsals to the catalog.
func (s *Store) AddRehearsals(rehearsals ...models.Rehearsal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rehearsals {
		for _, existing := range s.rehearsals {
			if existing.ID == r.ID {
				return fmt.Errorf("rehearsal %q: %w", r.ID, apperr.ErrAlreadyExists)
			}
		}
		s.rehearsals = append(s.rehearsals, r)
	}
	return nil
}
