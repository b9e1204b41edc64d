package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pixel-shelf/gametracker-backend/internal/models"
)

// ErrGameNotFound is returned when no row exists for the requested id.
var ErrGameNotFound = errors.New("game not found")

// GameRepository defines the database operations for finished games.
type GameRepository interface {
	// ListGames returns every finished game in the table.
	ListGames() ([]models.GameRecord, error)

	// GetGameByID returns the game with the given id, or ErrGameNotFound.
	GetGameByID(id string) (*models.GameRecord, error)

	// CreateGame inserts a new game and returns the stored record with its id.
	CreateGame(draft models.GameDraft) (*models.GameRecord, error)

	// UpdateGame replaces the fields of an existing game, preserving its id.
	UpdateGame(id string, draft models.GameDraft) (*models.GameRecord, error)

	// DeleteGame removes the game with the given id, or ErrGameNotFound.
	DeleteGame(id string) error

	// CheckConnection verifies the datastore is reachable (used by /health).
	CheckConnection() error
}

// postgresGameRepository implements GameRepository over a direct Postgres
// connection.
type postgresGameRepository struct {
	db *sql.DB
}

// NewPostgresGameRepository creates a GameRepository backed by database/sql.
func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

const gameColumns = `id, title, platform, genre, completed_date, rating, hours_played, cover, notes`

// scanGame reads one row into a GameRecord, mapping NULL optional columns to
// their zero values.
func scanGame(row interface{ Scan(...interface{}) error }) (*models.GameRecord, error) {
	var game models.GameRecord
	var genre, completedDate, cover, notes sql.NullString
	var hoursPlayed sql.NullInt64

	err := row.Scan(
		&game.ID,
		&game.Title,
		&game.Platform,
		&genre,
		&completedDate,
		&game.Rating,
		&hoursPlayed,
		&cover,
		&notes,
	)
	if err != nil {
		return nil, err
	}

	game.Genre = genre.String
	game.CompletedDate = completedDate.String
	game.HoursPlayed = int(hoursPlayed.Int64)
	game.Cover = cover.String
	game.Notes = notes.String
	return &game, nil
}

// ListGames returns every finished game in the table.
func (r *postgresGameRepository) ListGames() ([]models.GameRecord, error) {
	query := `SELECT ` + gameColumns + ` FROM finished_videogames ORDER BY completed_date DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query finished games: %w", err)
	}
	defer rows.Close()

	var games []models.GameRecord
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		games = append(games, *game)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating game rows: %w", err)
	}

	return games, nil
}

// GetGameByID returns the game with the given id.
func (r *postgresGameRepository) GetGameByID(id string) (*models.GameRecord, error) {
	query := `SELECT ` + gameColumns + ` FROM finished_videogames WHERE id = $1`

	game, err := scanGame(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to fetch game %s: %w", id, err)
	}
	return game, nil
}

// CreateGame inserts a new game. The id is generated here as a UUID rather
// than derived from the clock, so concurrent inserts cannot collide.
func (r *postgresGameRepository) CreateGame(draft models.GameDraft) (*models.GameRecord, error) {
	id := uuid.NewString()
	query := `
		INSERT INTO finished_videogames (id, title, platform, genre, completed_date, rating, hours_played, cover, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(query,
		id, draft.Title, draft.Platform, nullable(draft.Genre), draft.CompletedDate,
		draft.Rating, draft.HoursPlayed, nullable(draft.Cover), nullable(draft.Notes),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert game: %w", err)
	}

	record := draft.Record(id)
	return &record, nil
}

// UpdateGame replaces the fields of an existing game, preserving its id.
func (r *postgresGameRepository) UpdateGame(id string, draft models.GameDraft) (*models.GameRecord, error) {
	query := `
		UPDATE finished_videogames
		SET title = $1, platform = $2, genre = $3, completed_date = $4, rating = $5, hours_played = $6, cover = $7, notes = $8
		WHERE id = $9
	`

	result, err := r.db.Exec(query,
		draft.Title, draft.Platform, nullable(draft.Genre), draft.CompletedDate,
		draft.Rating, draft.HoursPlayed, nullable(draft.Cover), nullable(draft.Notes), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update game %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, ErrGameNotFound
	}

	record := draft.Record(id)
	return &record, nil
}

// DeleteGame removes the game with the given id.
func (r *postgresGameRepository) DeleteGame(id string) error {
	result, err := r.db.Exec(`DELETE FROM finished_videogames WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete game %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrGameNotFound
	}
	return nil
}

// CheckConnection verifies the database is reachable.
func (r *postgresGameRepository) CheckConnection() error {
	return r.db.Ping()
}

// nullable maps an empty optional string to SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
