package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/pixel-shelf/gametracker-backend/internal/database"
	"github.com/pixel-shelf/gametracker-backend/internal/models"
	"github.com/pixel-shelf/gametracker-backend/internal/services/stats"
)

// GameHandler handles the /api/games CRUD endpoints.
type GameHandler struct {
	repo     database.GameRepository
	validate *validator.Validate
}

// NewGameHandler creates a new GameHandler instance.
func NewGameHandler(repo database.GameRepository) *GameHandler {
	return &GameHandler{
		repo:     repo,
		validate: validator.New(),
	}
}

// WriteErrorResponse writes an error response as {"error": message}.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// WriteJSONResponse writes a JSON response.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// GetAllGames returns every finished game.
// GET /api/games
func (h *GameHandler) GetAllGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.repo.ListGames()
	if err != nil {
		log.Printf("[GameHandler] Failed to list games: %v", err)
		WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if games == nil {
		games = []models.GameRecord{}
	}
	WriteJSONResponse(w, http.StatusOK, games)
}

// GetGameByID returns one game.
// GET /api/games/{id}
func (h *GameHandler) GetGameByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	game, err := h.repo.GetGameByID(id)
	if err != nil {
		if errors.Is(err, database.ErrGameNotFound) {
			WriteErrorResponse(w, http.StatusNotFound, "game not found")
			return
		}
		log.Printf("[GameHandler] Failed to fetch game %s: %v", id, err)
		WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSONResponse(w, http.StatusOK, game)
}

// CreateGame validates the payload and inserts a new game.
// POST /api/games
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}

	game, err := h.repo.CreateGame(draft)
	if err != nil {
		log.Printf("[GameHandler] Failed to create game: %v", err)
		WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSONResponse(w, http.StatusCreated, game)
}

// UpdateGame replaces the fields of an existing game.
// PUT /api/games/{id}
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	draft, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}

	game, err := h.repo.UpdateGame(id, draft)
	if err != nil {
		if errors.Is(err, database.ErrGameNotFound) {
			WriteErrorResponse(w, http.StatusNotFound, "game not found")
			return
		}
		log.Printf("[GameHandler] Failed to update game %s: %v", id, err)
		WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSONResponse(w, http.StatusOK, game)
}

// DeleteGame removes a game.
// DELETE /api/games/{id}
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.repo.DeleteGame(id); err != nil {
		if errors.Is(err, database.ErrGameNotFound) {
			WriteErrorResponse(w, http.StatusNotFound, "game not found")
			return
		}
		log.Printf("[GameHandler] Failed to delete game %s: %v", id, err)
		WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "game deleted"})
}

// GetStats computes the statistics view over the whole table.
// GET /api/games/stats
func (h *GameHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	games, err := h.repo.ListGames()
	if err != nil {
		log.Printf("[GameHandler] Failed to list games for stats: %v", err)
		WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSONResponse(w, http.StatusOK, stats.Calculate(games))
}

// decodeDraft parses and validates a create/update payload. On failure it has
// already written the 400 response.
func (h *GameHandler) decodeDraft(w http.ResponseWriter, r *http.Request) (models.GameDraft, bool) {
	var draft models.GameDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return draft, false
	}

	if err := h.validate.Struct(draft); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "title, platform, completed_date and rating (1-5) are required: "+err.Error())
		return draft, false
	}
	return draft, true
}
