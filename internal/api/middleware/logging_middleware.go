package middleware

import (
	"log"
	"net/http"
)

// RequestLogger logs every request as "METHOD path" before passing it on.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
