package http

import (
	"net/http"

	"github.com/klwxsrx/social-profile-service/pkg/observability"
)

const RequestIDHeader = "X-Request-ID"

// WithObservability takes the request id from the header or generates a new one and echoes it in the response.
func WithObservability(observer observability.Observer) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := observability.WithRequestIDOrNew(r.Context(), observer, r.Header.Get(RequestIDHeader))
			requestID, _ := observer.RequestID(ctx)

			w.Header().Set(RequestIDHeader, requestID)
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
}
