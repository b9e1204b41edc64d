// Package stats derives summary statistics from the game library. Every
// function here is pure: the same input slice always yields the same summary,
// and nothing is cached between calls.
package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pixel-shelf/gametracker-backend/internal/models"
)

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// maxMonthlyBuckets caps the monthly activity series.
const maxMonthlyBuckets = 6

// topRatedLimit caps the top-rated ranking.
const topRatedLimit = 5

// Calculate computes the full statistics view over the given records. An
// empty input produces zero-valued aggregates, never a division by zero.
func Calculate(games []models.GameRecord) models.StatsSummary {
	summary := models.StatsSummary{
		TotalGames:    len(games),
		PlatformStats: []models.PlatformStat{},
		GenreStats:    []models.GenreStat{},
		TopRatedGames: []models.GameRecord{},
		MonthlyStats:  []models.MonthlyStat{},
	}

	ratingSum := 0
	for _, game := range games {
		summary.TotalHours += game.HoursPlayed
		ratingSum += game.Rating
	}
	if summary.TotalGames > 0 {
		summary.AverageRating = round1(float64(ratingSum) / float64(summary.TotalGames))
	}

	summary.PlatformStats = platformStats(games, summary.TotalGames)
	summary.GenreStats = genreStats(games, summary.TotalGames)
	summary.TopRatedGames = topRatedGames(games)
	summary.MonthlyStats = monthlyStats(games)

	return summary
}

// platformStats groups by platform, ordered by count descending.
func platformStats(games []models.GameRecord, totalGames int) []models.PlatformStat {
	counts := make(map[string]int)
	hours := make(map[string]int)
	var order []string
	for _, game := range games {
		if _, seen := counts[game.Platform]; !seen {
			order = append(order, game.Platform)
		}
		counts[game.Platform]++
		hours[game.Platform] += game.HoursPlayed
	}

	result := make([]models.PlatformStat, 0, len(order))
	for _, platform := range order {
		result = append(result, models.PlatformStat{
			Platform:   platform,
			Count:      counts[platform],
			Hours:      hours[platform],
			Percentage: percentage(counts[platform], totalGames),
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// genreStats groups by genre, skipping records without one, ordered by count
// descending. Percentages are still relative to the full total, as the
// original stats view computed them.
func genreStats(games []models.GameRecord, totalGames int) []models.GenreStat {
	counts := make(map[string]int)
	var order []string
	for _, game := range games {
		if game.Genre == "" {
			continue
		}
		if _, seen := counts[game.Genre]; !seen {
			order = append(order, game.Genre)
		}
		counts[game.Genre]++
	}

	result := make([]models.GenreStat, 0, len(order))
	for _, genre := range order {
		result = append(result, models.GenreStat{
			Genre:      genre,
			Count:      counts[genre],
			Percentage: percentage(counts[genre], totalGames),
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// topRatedGames returns the five highest-rated games. The sort is stable so
// that ties keep their input order and repeated calls agree.
func topRatedGames(games []models.GameRecord) []models.GameRecord {
	ranked := make([]models.GameRecord, len(games))
	copy(ranked, games)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})
	if len(ranked) > topRatedLimit {
		ranked = ranked[:topRatedLimit]
	}
	return ranked
}

// monthlyStats buckets completions by calendar month and keeps the
// chronologically most recent six buckets. Records whose date does not parse
// are left out of the series but affect nothing else.
func monthlyStats(games []models.GameRecord) []models.MonthlyStat {
	type bucket struct {
		year  int
		month time.Month
		count int
	}
	buckets := make(map[int]*bucket) // keyed year*100+month

	for _, game := range games {
		date, ok := models.ParseCompletedDate(game.CompletedDate)
		if !ok {
			continue
		}
		key := date.Year()*100 + int(date.Month())
		if buckets[key] == nil {
			buckets[key] = &bucket{year: date.Year(), month: date.Month()}
		}
		buckets[key].count++
	}

	keys := make([]int, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	if len(keys) > maxMonthlyBuckets {
		keys = keys[len(keys)-maxMonthlyBuckets:]
	}

	result := make([]models.MonthlyStat, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		result = append(result, models.MonthlyStat{
			Month: fmt.Sprintf("%s %d", monthNames[b.month-1], b.year),
			Count: b.count,
		})
	}
	return result
}

// Dashboard computes the compact home-view summary.
func Dashboard(games []models.GameRecord, now time.Time) models.DashboardStats {
	dashboard := models.DashboardStats{TotalGames: len(games)}

	ratingSum := 0
	platformCounts := make(map[string]int)
	genreCounts := make(map[string]int)
	for _, game := range games {
		dashboard.TotalHours += game.HoursPlayed
		ratingSum += game.Rating
		platformCounts[game.Platform]++
		if game.Genre != "" {
			genreCounts[game.Genre]++
		}
		if game.Rating == 5 {
			dashboard.FiveStarGames++
		}
		if date, ok := models.ParseCompletedDate(game.CompletedDate); ok {
			if date.Year() == now.Year() && date.Month() == now.Month() {
				dashboard.ThisMonthGames++
			}
		}
	}

	if dashboard.TotalGames > 0 {
		dashboard.AverageRating = round1(float64(ratingSum) / float64(dashboard.TotalGames))
	}
	dashboard.TopPlatform = mostCounted(platformCounts)
	dashboard.TopGenre = mostCounted(genreCounts)

	return dashboard
}

// mostCounted returns the key with the highest count, or "" when empty.
func mostCounted(counts map[string]int) string {
	best := ""
	for key, count := range counts {
		if best == "" || count > counts[best] || (count == counts[best] && key < best) {
			best = key
		}
	}
	return best
}

// percentage is count/total*100 rounded to one decimal, 0 when total is 0.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(count) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
