package database

import (
	"fmt"
	"log"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"github.com/pixel-shelf/gametracker-backend/internal/models"
)

const gamesTable = "finished_videogames"

// supabaseGameRepository implements GameRepository over the Supabase REST API
// (PostgREST), the same path the original front end used. It is the default
// backend when no direct DATABASE_URL is configured.
type supabaseGameRepository struct {
	client *supabase.Client
}

// NewSupabaseGameRepository creates a GameRepository backed by Supabase.
func NewSupabaseGameRepository(supabaseURL, supabaseKey string) (GameRepository, error) {
	if supabaseURL == "" || supabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_ANON_KEY are required")
	}

	log.Println("SupabaseRepository Info: initializing Supabase client...")
	client, err := supabase.NewClient(supabaseURL, supabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Supabase client: %w", err)
	}

	return &supabaseGameRepository{client: client}, nil
}

// ListGames returns every finished game in the table.
func (r *supabaseGameRepository) ListGames() ([]models.GameRecord, error) {
	var games []models.GameRecord
	_, err := r.client.From(gamesTable).
		Select("*", "", false).
		Order("completed_date", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&games)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch games from Supabase: %w", err)
	}
	return games, nil
}

// GetGameByID returns the game with the given id.
func (r *supabaseGameRepository) GetGameByID(id string) (*models.GameRecord, error) {
	var games []models.GameRecord
	_, err := r.client.From(gamesTable).Select("*", "", false).Eq("id", id).ExecuteTo(&games)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game %s from Supabase: %w", id, err)
	}
	if len(games) == 0 {
		return nil, ErrGameNotFound
	}
	return &games[0], nil
}

// CreateGame inserts a new game. The id is assigned by the table default, so
// the returned representation carries it.
func (r *supabaseGameRepository) CreateGame(draft models.GameDraft) (*models.GameRecord, error) {
	var inserted []models.GameRecord
	_, err := r.client.From(gamesTable).Insert(draft, false, "", "representation", "").ExecuteTo(&inserted)
	if err != nil {
		return nil, fmt.Errorf("failed to insert game into Supabase: %w", err)
	}
	if len(inserted) == 0 {
		return nil, fmt.Errorf("insert returned no representation")
	}
	return &inserted[0], nil
}

// UpdateGame replaces the fields of an existing game, preserving its id.
func (r *supabaseGameRepository) UpdateGame(id string, draft models.GameDraft) (*models.GameRecord, error) {
	var updated []models.GameRecord
	_, err := r.client.From(gamesTable).Update(draft, "representation", "").Eq("id", id).ExecuteTo(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update game %s in Supabase: %w", id, err)
	}
	if len(updated) == 0 {
		return nil, ErrGameNotFound
	}
	return &updated[0], nil
}

// DeleteGame removes the game with the given id.
func (r *supabaseGameRepository) DeleteGame(id string) error {
	var deleted []models.GameRecord
	_, err := r.client.From(gamesTable).Delete("representation", "").Eq("id", id).ExecuteTo(&deleted)
	if err != nil {
		return fmt.Errorf("failed to delete game %s from Supabase: %w", id, err)
	}
	if len(deleted) == 0 {
		return ErrGameNotFound
	}
	return nil
}

// CheckConnection runs a head-only count query against the table, the same
// probe the original backend used before accepting traffic.
func (r *supabaseGameRepository) CheckConnection() error {
	_, _, err := r.client.From(gamesTable).Select("id", "exact", true).Execute()
	if err != nil {
		return fmt.Errorf("supabase connection check failed: %w", err)
	}
	return nil
}
