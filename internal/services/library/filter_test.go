package library

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixel-shelf/gametracker-backend/internal/models"
)

func sampleGames() []models.GameRecord {
	return []models.GameRecord{
		{ID: "1", Title: "The Legend of Zelda: Breath of the Wild", Platform: "Nintendo Switch", Rating: 5, HoursPlayed: 120, CompletedDate: "2024-09-15"},
		{ID: "2", Title: "God of War Ragnarök", Platform: "PlayStation 5", Rating: 5, HoursPlayed: 45, CompletedDate: "2024-10-01"},
		{ID: "3", Title: "Elden Ring", Platform: "PC", Rating: 4, HoursPlayed: 95, CompletedDate: "2024-08-20"},
	}
}

func TestFilterSortSearchIsCaseInsensitive(t *testing.T) {
	result := FilterSort(sampleGames(), Criteria{Search: "zelda"})

	assert.Len(t, result, 1)
	assert.Equal(t, "The Legend of Zelda: Breath of the Wild", result[0].Title)
}

func TestFilterSortByPlatform(t *testing.T) {
	result := FilterSort(sampleGames(), Criteria{Platform: "PC"})

	assert.Len(t, result, 1)
	assert.Equal(t, "Elden Ring", result[0].Title)

	// "all" and the empty string both mean no platform filter.
	assert.Len(t, FilterSort(sampleGames(), Criteria{Platform: PlatformAll}), 3)
	assert.Len(t, FilterSort(sampleGames(), Criteria{Platform: ""}), 3)
}

func TestFilterSortByMinRating(t *testing.T) {
	result := FilterSort(sampleGames(), Criteria{MinRating: 5})

	assert.Len(t, result, 2)
	for _, game := range result {
		assert.Equal(t, 5, game.Rating)
	}
}

func TestFilterSortFiltersAreConjunctive(t *testing.T) {
	result := FilterSort(sampleGames(), Criteria{Search: "god", Platform: "PC", MinRating: 5})

	assert.Empty(t, result)
}

func TestFilterSortByDateMostRecentFirst(t *testing.T) {
	result := FilterSort(sampleGames(), Criteria{SortBy: SortByDate})

	assert.Equal(t, []string{"2", "1", "3"}, ids(result))
}

func TestFilterSortMalformedDateSinksToEnd(t *testing.T) {
	games := append(sampleGames(), models.GameRecord{ID: "4", Title: "Broken", Platform: "PC", Rating: 3, CompletedDate: "someday"})

	result := FilterSort(games, Criteria{SortBy: SortByDate})

	assert.Equal(t, "4", result[len(result)-1].ID)
	assert.Equal(t, []string{"2", "1", "3"}, ids(result[:3]))
}

func TestFilterSortByTitle(t *testing.T) {
	result := FilterSort(sampleGames(), Criteria{SortBy: SortByTitle})

	assert.Equal(t, "Elden Ring", result[0].Title)
	assert.Equal(t, "God of War Ragnarök", result[1].Title)
	assert.Equal(t, "The Legend of Zelda: Breath of the Wild", result[2].Title)
}

func TestFilterSortByRatingDescending(t *testing.T) {
	result := FilterSort(sampleGames(), Criteria{SortBy: SortByRating})

	assert.Equal(t, 5, result[0].Rating)
	assert.Equal(t, 4, result[len(result)-1].Rating)
	// Stable: the two five-star games keep their input order.
	assert.Equal(t, []string{"1", "2", "3"}, ids(result))
}

func TestFilterSortByHoursMissingAsZero(t *testing.T) {
	games := []models.GameRecord{
		{ID: "1", Title: "Long", Rating: 4, HoursPlayed: 120, CompletedDate: "2024-01-01"},
		{ID: "2", Title: "Unknown", Rating: 4, CompletedDate: "2024-01-02"},
		{ID: "3", Title: "Short", Rating: 4, HoursPlayed: 45, CompletedDate: "2024-01-03"},
	}

	result := FilterSort(games, Criteria{SortBy: SortByHours})

	assert.Equal(t, []string{"1", "3", "2"}, ids(result))
}

func TestFilterSortEmptyInput(t *testing.T) {
	assert.Empty(t, FilterSort(nil, Criteria{Search: "anything", SortBy: SortByTitle}))
}

func TestFilterSortDoesNotMutateInput(t *testing.T) {
	games := sampleGames()
	FilterSort(games, Criteria{SortBy: SortByTitle})

	assert.Equal(t, []string{"1", "2", "3"}, ids(games))
}

func ids(games []models.GameRecord) []string {
	result := make([]string, len(games))
	for i, game := range games {
		result[i] = game.ID
	}
	return result
}
