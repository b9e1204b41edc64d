package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pixel-shelf/gametracker-backend/internal/database"
)

// HealthHandler reports backend and datastore connectivity.
type HealthHandler struct {
	repo database.GameRepository
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(repo database.GameRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

type healthResponse struct {
	Status    string `json:"status"`
	Supabase  string `json:"supabase"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// Check probes the datastore and reports {status, supabase, timestamp}.
// GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if err := h.repo.CheckConnection(); err != nil {
		log.Printf("[HealthHandler] Connectivity check failed: %v", err)
		WriteJSONResponse(w, http.StatusInternalServerError, healthResponse{
			Status:    "Error",
			Supabase:  "Disconnected",
			Timestamp: timestamp,
			Error:     err.Error(),
		})
		return
	}

	WriteJSONResponse(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Supabase:  "Connected",
		Timestamp: timestamp,
	})
}
