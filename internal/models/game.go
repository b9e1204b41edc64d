package models

import (
	"time"
)

// GameRecord corresponds to one row of the finished_videogames table.
// Optional columns (genre, hours_played, cover, notes) come back as their
// zero value when absent; hours_played in particular is treated as 0
// everywhere it is summed or sorted.
type GameRecord struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Platform      string `json:"platform"`
	Genre         string `json:"genre,omitempty"`
	CompletedDate string `json:"completed_date"`
	Rating        int    `json:"rating"`
	HoursPlayed   int    `json:"hours_played,omitempty"`
	Cover         string `json:"cover,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// GameDraft is the create/update payload. The id is never part of it: it is
// assigned by the backend (or locally as a UUID for records that have not
// done the persistence round trip yet).
type GameDraft struct {
	Title         string `json:"title" validate:"required"`
	Platform      string `json:"platform" validate:"required"`
	Genre         string `json:"genre,omitempty"`
	CompletedDate string `json:"completed_date" validate:"required,datetime=2006-01-02"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	HoursPlayed   int    `json:"hours_played,omitempty" validate:"min=0"`
	Cover         string `json:"cover,omitempty" validate:"omitempty,url"`
	Notes         string `json:"notes,omitempty"`
}

// Record builds a GameRecord from the draft with the given id.
func (d GameDraft) Record(id string) GameRecord {
	return GameRecord{
		ID:            id,
		Title:         d.Title,
		Platform:      d.Platform,
		Genre:         d.Genre,
		CompletedDate: d.CompletedDate,
		Rating:        d.Rating,
		HoursPlayed:   d.HoursPlayed,
		Cover:         d.Cover,
		Notes:         d.Notes,
	}
}

const completedDateLayout = "2006-01-02"

// ParseCompletedDate parses the completed_date column. Supabase date columns
// serialize as plain YYYY-MM-DD, but rows written by older clients carried a
// full timestamp, so RFC3339 is accepted as a fallback.
func ParseCompletedDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(completedDateLayout, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
