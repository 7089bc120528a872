package middleware

import (
	"net/http"
	"time"

	"mergingtonactivities/internal/observability"
)

// Metrics records request count and latency labelled by the ServeMux route pattern.
// It must wrap the ServeMux directly, since the mux sets r.Pattern on the request it is given.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		observability.RecordHTTPRequest(r.Method, r.Pattern, wrapped.status, time.Since(start))
	})
}
