package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixel-shelf/gametracker-backend/internal/models"
)

func draft(title, platform string, rating int) models.GameDraft {
	return models.GameDraft{
		Title:         title,
		Platform:      platform,
		CompletedDate: "2024-06-01",
		Rating:        rating,
	}
}

func TestLibraryAddAssignsUniqueIDs(t *testing.T) {
	lib := NewLibrary()

	first := lib.Add(draft("Hades", "PC", 5))
	second := lib.Add(draft("Celeste", "Switch", 5))

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, lib.Len())
}

func TestLibraryUpdatePreservesIDAndPosition(t *testing.T) {
	lib := NewLibrary()
	lib.Add(draft("Hades", "PC", 5))
	target := lib.Add(draft("Celeste", "Switch", 4))
	lib.Add(draft("Hollow Knight", "PC", 5))

	updated, err := lib.Update(target.ID, draft("Celeste", "Switch", 5))
	require.NoError(t, err)

	assert.Equal(t, target.ID, updated.ID)
	assert.Equal(t, 5, updated.Rating)

	snapshot := lib.Snapshot()
	assert.Equal(t, target.ID, snapshot[1].ID)
}

func TestLibraryUpdateUnknownID(t *testing.T) {
	lib := NewLibrary()

	_, err := lib.Update("missing", draft("X", "PC", 3))

	assert.ErrorIs(t, err, ErrNotInLibrary)
}

func TestLibraryRemoveExactlyOne(t *testing.T) {
	lib := NewLibrary()
	keepA := lib.Add(draft("Hades", "PC", 5))
	remove := lib.Add(draft("Celeste", "Switch", 4))
	keepB := lib.Add(draft("Hollow Knight", "PC", 5))

	require.NoError(t, lib.Remove(remove.ID))

	snapshot := lib.Snapshot()
	require.Len(t, snapshot, 2)
	// The survivors are untouched, fields included.
	assert.Equal(t, keepA, snapshot[0])
	assert.Equal(t, keepB, snapshot[1])

	assert.ErrorIs(t, lib.Remove(remove.ID), ErrNotInLibrary)
}

func TestLibraryReplace(t *testing.T) {
	lib := NewLibrary()
	lib.Add(draft("Old", "PC", 3))

	lib.Replace([]models.GameRecord{
		{ID: "a", Title: "New A", Platform: "PC", Rating: 4, CompletedDate: "2024-01-01"},
		{ID: "b", Title: "New B", Platform: "Switch", Rating: 5, CompletedDate: "2024-02-01"},
	})

	assert.Equal(t, 2, lib.Len())
	_, found := lib.Get("a")
	assert.True(t, found)
}

func TestLibrarySnapshotIsACopy(t *testing.T) {
	lib := NewLibrary()
	added := lib.Add(draft("Hades", "PC", 5))

	snapshot := lib.Snapshot()
	snapshot[0].Title = "Mutated"

	got, found := lib.Get(added.ID)
	require.True(t, found)
	assert.Equal(t, "Hades", got.Title)
}

func TestLibraryPlatformsDistinctFirstSeen(t *testing.T) {
	lib := NewLibrary()
	lib.Add(draft("A", "PC", 4))
	lib.Add(draft("B", "Switch", 4))
	lib.Add(draft("C", "PC", 4))

	assert.Equal(t, []string{"PC", "Switch"}, lib.Platforms())
}
