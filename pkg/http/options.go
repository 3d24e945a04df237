package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

const (
	HealthPath  = "/healthz"
	MetricsPath = "/metrics"
)

func WithHealthCheck() ServerOption {
	return func(router *mux.Router) {
		router.
			Name(getRouteName(http.MethodGet, HealthPath)).
			Methods(http.MethodGet).
			Path(HealthPath).
			HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(struct {
					Status string `json:"status"`
				}{
					Status: "OK",
				})
			})
	}
}

func WithMetricsHandler(handler http.Handler) ServerOption {
	return func(router *mux.Router) {
		router.
			Name(getRouteName(http.MethodGet, MetricsPath)).
			Methods(http.MethodGet).
			Path(MetricsPath).
			Handler(handler)
	}
}

func WithMW(mw ServerMiddleware) ServerOption {
	return func(router *mux.Router) {
		router.Use(mux.MiddlewareFunc(mw))
	}
}
