// Package library holds the in-memory collection of finished games for the
// current session and derives filtered views over it.
package library

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/pixel-shelf/gametracker-backend/internal/models"
)

// ErrNotInLibrary is returned when an id does not match any held record.
var ErrNotInLibrary = errors.New("game is not in the library")

// Library is the owned record store. It is populated wholesale from the
// backend and mutated locally on add/edit/delete; every mutation replaces
// nothing in place that a previous Snapshot could still see.
type Library struct {
	mu    sync.RWMutex
	games []models.GameRecord
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{}
}

// Replace swaps the whole collection, as done on a full reload.
func (l *Library) Replace(games []models.GameRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.games = make([]models.GameRecord, len(games))
	copy(l.games, games)
}

// Add appends a record built from the draft. The id is a fresh UUID, not a
// timestamp, so two quick additions can never collide.
func (l *Library) Add(draft models.GameDraft) models.GameRecord {
	record := draft.Record(uuid.NewString())

	l.mu.Lock()
	defer l.mu.Unlock()
	l.games = append(l.games, record)
	return record
}

// AddRecord appends a record that already carries a backend-assigned id.
func (l *Library) AddRecord(record models.GameRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.games = append(l.games, record)
}

// Update replaces the fields of the record with the given id, keeping the id
// and the record's position.
func (l *Library) Update(id string, draft models.GameDraft) (models.GameRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.games {
		if l.games[i].ID == id {
			l.games[i] = draft.Record(id)
			return l.games[i], nil
		}
	}
	return models.GameRecord{}, ErrNotInLibrary
}

// Remove deletes exactly the record with the given id.
func (l *Library) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.games {
		if l.games[i].ID == id {
			l.games = append(l.games[:i], l.games[i+1:]...)
			return nil
		}
	}
	return ErrNotInLibrary
}

// Get returns the record with the given id.
func (l *Library) Get(id string) (models.GameRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, game := range l.games {
		if game.ID == id {
			return game, true
		}
	}
	return models.GameRecord{}, false
}

// Snapshot returns a copy of the collection in insertion order. Callers may
// sort or filter it freely without affecting the store.
func (l *Library) Snapshot() []models.GameRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	games := make([]models.GameRecord, len(l.games))
	copy(games, l.games)
	return games
}

// Len returns the number of held records.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.games)
}

// Platforms returns the distinct platform values present, in first-seen
// order, for populating the platform filter.
func (l *Library) Platforms() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]bool)
	var platforms []string
	for _, game := range l.games {
		if !seen[game.Platform] {
			seen[game.Platform] = true
			platforms = append(platforms, game.Platform)
		}
	}
	return platforms
}
