package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

const handlerMetaContextKey contextKey = iota

type (
	contextKey int

	Panic struct {
		Message    string
		Stacktrace []byte
	}

	handlerMetadata struct {
		Code  int
		Panic *Panic
		Error error
	}
)

func withHandlerMetadata(router *mux.Router) *mux.Router {
	router.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), handlerMetaContextKey, &handlerMetadata{Code: http.StatusOK})
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})

	return router
}

func getHandlerMetadata(ctx context.Context) *handlerMetadata {
	meta, ok := ctx.Value(handlerMetaContextKey).(*handlerMetadata)
	if ok {
		return meta
	}

	return &handlerMetadata{}
}

func getRouteTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return r.URL.Path
	}

	template, err := route.GetPathTemplate()
	if err != nil {
		return r.URL.Path
	}

	return template
}
