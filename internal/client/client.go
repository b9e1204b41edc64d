// Package client is the REST client the tracker views load their library
// through. It mirrors the backend's /api/games surface one to one.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/pixel-shelf/gametracker-backend/internal/models"
)

// ErrorKind classifies a failed request.
type ErrorKind string

const (
	// NetworkError means the request never produced an HTTP response.
	NetworkError ErrorKind = "network_error"
	// ServerError means the backend answered with a 5xx status.
	ServerError ErrorKind = "server_error"
	// NotFoundError means the requested game does not exist.
	NotFoundError ErrorKind = "not_found"
	// ValidationError means the backend rejected the payload (HTTP 400).
	ValidationError ErrorKind = "validation_error"
)

// RequestError is the error type every failed call returns.
type RequestError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Client talks to the games backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL, e.g. "http://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListGames fetches every finished game.
func (c *Client) ListGames() ([]models.GameRecord, error) {
	var games []models.GameRecord
	if err := c.do(http.MethodGet, "/api/games", nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// GetGame fetches one game by id.
func (c *Client) GetGame(id string) (*models.GameRecord, error) {
	var game models.GameRecord
	if err := c.do(http.MethodGet, "/api/games/"+id, nil, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// CreateGame persists a new game and returns it with its assigned id.
func (c *Client) CreateGame(draft models.GameDraft) (*models.GameRecord, error) {
	var game models.GameRecord
	if err := c.do(http.MethodPost, "/api/games", draft, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// UpdateGame replaces the fields of an existing game.
func (c *Client) UpdateGame(id string, draft models.GameDraft) (*models.GameRecord, error) {
	var game models.GameRecord
	if err := c.do(http.MethodPut, "/api/games/"+id, draft, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// DeleteGame removes a game by id.
func (c *Client) DeleteGame(id string) error {
	return c.do(http.MethodDelete, "/api/games/"+id, nil, nil)
}

// GetStats fetches the server-computed statistics view.
func (c *Client) GetStats() (*models.StatsSummary, error) {
	var summary models.StatsSummary
	if err := c.do(http.MethodGet, "/api/games/stats", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// do sends one request and decodes the response into out (when non-nil).
// Failed calls never retry; the caller reports the condition.
func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Kind: NetworkError, Message: fmt.Sprintf("failed to encode request body: %v", err)}
		}
		reader = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return &RequestError{Kind: NetworkError, Message: fmt.Sprintf("failed to build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Client Error: %s %s failed: %v", method, path, err)
		return &RequestError{Kind: NetworkError, Message: err.Error()}
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Kind: NetworkError, Message: fmt.Sprintf("failed to read response body: %v", err)}
	}

	if resp.StatusCode >= 400 {
		return &RequestError{
			Kind:    kindForStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: errorMessage(responseBody),
		}
	}

	if out != nil {
		if err := json.Unmarshal(responseBody, out); err != nil {
			return &RequestError{Kind: ServerError, Status: resp.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err)}
		}
	}
	return nil
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusNotFound:
		return NotFoundError
	case status >= 500:
		return ServerError
	default:
		return ValidationError
	}
}

// errorMessage extracts the {"error": "..."} body the backend sends.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(body)
}
