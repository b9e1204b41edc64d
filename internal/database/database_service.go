package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DatabaseService owns the direct Postgres connection used when the backend
// talks to the database over DATABASE_URL instead of the Supabase REST API.
type DatabaseService struct {
	DB *sql.DB
}

// NewDatabaseService creates a new instance of DatabaseService and establishes a database connection.
func NewDatabaseService(databaseURL string) (*DatabaseService, error) {
	log.Printf("DatabaseService Info: connecting, first 50 chars of URL: %s...", databaseURL[:min(len(databaseURL), 50)])
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		log.Printf("DatabaseService Error: sql.Open failed: %v", err)
		return nil, fmt.Errorf("failed to create database connection object: %w", err)
	}

	if err := db.Ping(); err != nil {
		log.Printf("DatabaseService Error: db.Ping failed: %v", err)
		return nil, fmt.Errorf("failed to ping database, check connection settings and network: %w", err)
	}

	log.Println("DatabaseService Info: connected to database.")
	return &DatabaseService{DB: db}, nil
}
