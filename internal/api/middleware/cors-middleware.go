package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/rs/cors"
)

// CORSHandler returns the middleware applying the CORS policy. Allowed
// origins come from FRONTEND_ORIGINS (comma separated), defaulting to the
// local Vite dev server.
func CORSHandler() func(http.Handler) http.Handler {
	origins := []string{"http://localhost:5173"}
	if env := os.Getenv("FRONTEND_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	return c.Handler
}
