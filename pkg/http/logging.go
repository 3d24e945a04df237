package http

import (
	"net/http"

	"github.com/klwxsrx/social-profile-service/pkg/log"
)

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r)
			if r.URL.Path == HealthPath || r.URL.Path == MetricsPath {
				return
			}

			meta := getHandlerMetadata(r.Context())
			logger := logger.With(log.Fields{
				"route":        getRouteTemplate(r),
				"method":       r.Method,
				"uri":          r.RequestURI,
				"responseCode": meta.Code,
			})

			switch {
			case meta.Panic != nil:
				logger.With(log.Fields{
					"panic":      meta.Panic.Message,
					"stacktrace": string(meta.Panic.Stacktrace),
				}).Log(r.Context(), errorLevel, "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				logger.WithError(meta.Error).Log(r.Context(), errorLevel, "request handled with error")
			case meta.Error != nil:
				logger.WithError(meta.Error).Log(r.Context(), infoLevel, "request handled with failure")
			default:
				logger.Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}
