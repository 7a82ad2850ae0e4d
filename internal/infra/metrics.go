package infra

import (
	"context"
	"net/http"
	"time"

	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/chatbot-service/internal/config"
)

// MetricsHTTP counts and times requests and exposes the metrics client to
// handlers through the request context.
func MetricsHTTP(next http.Handler, metrics *pkg.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx := context.WithValue(r.Context(), config.KeyMetrics, metrics)
		next.ServeHTTP(w, r.WithContext(ctx))

		if metrics != nil {
			metrics.Increment("http.request")
			metrics.Duration(time.Since(start).Milliseconds(), "http.request")
		}
	})
}
