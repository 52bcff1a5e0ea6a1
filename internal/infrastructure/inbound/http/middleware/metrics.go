package middleware

import (
	"net/http"
	"strconv"
	"time"

	ports "blog-platform/internal/domain/ports/output"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Metrics labels requests with the matched route pattern, not the raw path,
// so ids do not blow up label cardinality.
func Metrics(metrics ports.MetricsProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			code := strconv.Itoa(status)
			metrics.IncrementHTTPRequests(r.Method, route, code)
			metrics.RecordHTTPRequestDuration(r.Method, route, code, time.Since(start))
		})
	}
}
