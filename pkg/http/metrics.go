package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/klwxsrx/social-profile-service/pkg/metric"
)

func WithMetrics(metrics metric.Metrics) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			handler.ServeHTTP(w, r)
			result := getHandlerMetadata(r.Context())

			labels := metric.Labels{
				"method": r.Method,
				"route":  getRouteTemplate(r),
			}
			if result.Panic != nil {
				metrics.With(labels).Increment("http_api_request_panics_total")
			}

			labels["code"] = strconv.Itoa(result.Code)
			metrics.With(labels).Duration("http_api_request_duration_seconds", time.Since(started))
		})
	})
}
