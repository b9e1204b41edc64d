package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/pixel-shelf/gametracker-backend/internal/api/handlers"
	"github.com/pixel-shelf/gametracker-backend/internal/api/middleware"
	"github.com/pixel-shelf/gametracker-backend/internal/database"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("warning: Error loading .env file (this is fine in production): %v", err)
		}
	}

	repo, err := buildRepository()
	if err != nil {
		log.Fatalf("Failed to set up game repository: %v", err)
	}

	// Probe the datastore before accepting traffic.
	if err := repo.CheckConnection(); err != nil {
		log.Fatalf("Could not reach the datastore, check your configuration: %v", err)
	}
	log.Println("Datastore connection verified.")

	gameHandler := handlers.NewGameHandler(repo)
	healthHandler := handlers.NewHealthHandler(repo)

	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "Welcome to the Games API!")
	}).Methods("GET")
	r.HandleFunc("/health", healthHandler.Check).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/games", gameHandler.GetAllGames).Methods("GET")
	api.HandleFunc("/games", gameHandler.CreateGame).Methods("POST")
	// Registered before /games/{id} so "stats" is not taken for an id.
	api.HandleFunc("/games/stats", gameHandler.GetStats).Methods("GET")
	api.HandleFunc("/games/{id}", gameHandler.GetGameByID).Methods("GET")
	api.HandleFunc("/games/{id}", gameHandler.UpdateGame).Methods("PUT")
	api.HandleFunc("/games/{id}", gameHandler.DeleteGame).Methods("DELETE")

	handler := middleware.CORSHandler()(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

// buildRepository picks the storage backend: a direct Postgres connection
// when DATABASE_URL is set, otherwise the Supabase REST API.
func buildRepository() (database.GameRepository, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		dbService, err := database.NewDatabaseService(databaseURL)
		if err != nil {
			return nil, err
		}
		return database.NewPostgresGameRepository(dbService.DB), nil
	}
	return database.NewSupabaseGameRepository(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_ANON_KEY"))
}
