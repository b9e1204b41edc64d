package library

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pixel-shelf/gametracker-backend/internal/models"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByTitle  SortKey = "title"
	SortByRating SortKey = "rating"
	SortByHours  SortKey = "hours"
)

// PlatformAll matches every platform.
const PlatformAll = "all"

// Criteria are the user-selected filter and sort parameters. The zero value
// matches everything and sorts by date.
type Criteria struct {
	Search    string
	Platform  string
	MinRating int
	SortBy    SortKey
}

// FilterSort derives the displayed sequence: it applies the three filters
// conjunctively, then orders the survivors by the sort key. The input slice
// is never modified and ties keep their input order.
func FilterSort(games []models.GameRecord, criteria Criteria) []models.GameRecord {
	result := make([]models.GameRecord, 0, len(games))

	// Collators buffer internally, so each call gets its own.
	titleCollator := collate.New(language.English, collate.IgnoreCase)

	search := strings.ToLower(criteria.Search)
	for _, game := range games {
		if search != "" && !strings.Contains(strings.ToLower(game.Title), search) {
			continue
		}
		if criteria.Platform != "" && criteria.Platform != PlatformAll && game.Platform != criteria.Platform {
			continue
		}
		if criteria.MinRating > 0 && game.Rating < criteria.MinRating {
			continue
		}
		result = append(result, game)
	}

	sortBy := criteria.SortBy
	if sortBy == "" {
		sortBy = SortByDate
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		switch sortBy {
		case SortByTitle:
			return titleCollator.CompareString(a.Title, b.Title) < 0
		case SortByRating:
			return a.Rating > b.Rating
		case SortByHours:
			return a.HoursPlayed > b.HoursPlayed
		default:
			// Most recent first. Unparsable dates collapse to the zero
			// time and sink to the end without disturbing the rest.
			dateA, _ := models.ParseCompletedDate(a.CompletedDate)
			dateB, _ := models.ParseCompletedDate(b.CompletedDate)
			return dateA.After(dateB)
		}
	})

	return result
}
