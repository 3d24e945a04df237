package http

import (
	"context"
	"net/http"

	"github.com/klwxsrx/social-profile-service/pkg/auth"
)

type AuthTokenProvider func(*http.Request) (auth.Token, bool)

// WithAuth resolves the principal of the first matching token provider, a request without a token is anonymous.
func WithAuth[T auth.Principal](provider auth.Provider[T], tokenProviders ...AuthTokenProvider) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ok bool
			var token auth.Token
			for _, tokenProvider := range tokenProviders {
				token, ok = tokenProvider(r)
				if ok {
					break
				}
			}
			if !ok {
				r = r.WithContext(auth.WithAuthentication(r.Context(), auth.Anonymous[T]()))
				handler.ServeHTTP(w, r)
				return
			}

			authData, err := provider.Authenticate(r.Context(), token)
			if err != nil {
				writeHandlerResult(r.Context(), w, http.StatusInternalServerError, err)
				return
			}

			r = r.WithContext(auth.WithAuthentication(r.Context(), authData))
			handler.ServeHTTP(w, r)
		})
	})
}

func WithAuthenticationRequirement() ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isAuthenticated, err := auth.IsAuthenticated(r.Context())
			if err != nil {
				writeHandlerResult(r.Context(), w, http.StatusInternalServerError, err)
				return
			}

			if !isAuthenticated {
				writeHandlerResult(r.Context(), w, http.StatusUnauthorized, auth.ErrUnauthenticated)
				return
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func writeHandlerResult(ctx context.Context, w http.ResponseWriter, httpCode int, err error) {
	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	writeErrorBody(w, httpCode, err)
}
