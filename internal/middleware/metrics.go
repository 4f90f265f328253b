package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Lixing-Zhang/nova-site/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// Metrics middleware records request counts and latency per chi route pattern
func Metrics(m *metrics.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			// the pattern is only complete once routing has finished
			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			m.ObserveRequest(r.Method, route, strconv.Itoa(ww.statusCode), time.Since(start).Seconds())
		})
	}
}
