package models

// PlatformStat is one row of the per-platform breakdown.
type PlatformStat struct {
	Platform   string  `json:"platform"`
	Count      int     `json:"count"`
	Hours      int     `json:"hours"`
	Percentage float64 `json:"percentage"`
}

// GenreStat is one row of the per-genre breakdown. Records without a genre
// are not counted.
type GenreStat struct {
	Genre      string  `json:"genre"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// MonthlyStat is one bucket of the monthly activity series, labeled
// "Jan 2006" style.
type MonthlyStat struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// StatsSummary is the full derived statistics view over the library.
type StatsSummary struct {
	TotalGames    int            `json:"total_games"`
	TotalHours    int            `json:"total_hours"`
	AverageRating float64        `json:"average_rating"`
	PlatformStats []PlatformStat `json:"platform_stats"`
	GenreStats    []GenreStat    `json:"genre_stats"`
	TopRatedGames []GameRecord   `json:"top_rated_games"`
	MonthlyStats  []MonthlyStat  `json:"monthly_stats"`
}

// DashboardStats is the compact summary shown on the home view.
type DashboardStats struct {
	TotalGames     int     `json:"total_games"`
	TotalHours     int     `json:"total_hours"`
	AverageRating  float64 `json:"average_rating"`
	ThisMonthGames int     `json:"this_month_games"`
	TopPlatform    string  `json:"top_platform"`
	TopGenre       string  `json:"top_genre"`
	FiveStarGames  int     `json:"five_star_games"`
}
