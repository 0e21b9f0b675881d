package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

var allowedHeaders = []string{
	"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization",
}

// Cors allows browser requests from the configured origins only. An
// empty origins list allows any origin, which is meant for development.
func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   allowedHeaders,
		AllowCredentials: true,
	}
	if len(allowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
		opts.AllowCredentials = false
	}
	return cors.New(opts).Handler
}
