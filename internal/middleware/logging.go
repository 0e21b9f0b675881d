package middleware

import (
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs every served request once the handler is done. Probe endpoints
// are only logged on trace level.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{w, http.StatusOK}
			next.ServeHTTP(resp, r)

			entry := log.WithFields(log.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   resp.statusCode,
				"duration": time.Since(begin).String(),
			})
			if strings.HasPrefix(r.URL.Path, "/_") {
				entry.Trace("probe request served")
				return
			}
			entry.Debugf("request served [UA: %s]", r.Header.Get("User-Agent"))
		})
	}
}
