package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/klwxsrx/social-profile-service/pkg/auth"
)

type (
	HandlerFunc func(w ResponseWriter, r *http.Request) error

	Handler interface {
		Method() string
		Path() string
		Handle(w ResponseWriter, r *http.Request) error
	}

	ResponseWriter interface {
		SetHeader(key, value string) ResponseWriter
		SetStatusCode(httpCode int) ResponseWriter
		SetJSONBody(data any) ResponseWriter
	}

	ErrorBody struct {
		Error   string `json:"error"`
		Details string `json:"details,omitempty"`
	}

	responseWriter struct {
		impl http.ResponseWriter

		body     any
		httpCode int
	}
)

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	return w
}

// Write keeps the status code set by the handler for an error only if it is an error code.
// Otherwise parsing errors become 400 and denied permissions become 403.
func (w *responseWriter) Write(ctx context.Context, err error) {
	meta := getHandlerMetadata(ctx)
	if err != nil {
		httpCode := w.httpCode
		if httpCode < http.StatusBadRequest {
			switch {
			case errors.Is(err, ErrParsingError):
				httpCode = http.StatusBadRequest
			case errors.Is(err, auth.ErrPermissionDenied):
				httpCode = http.StatusForbidden
			default:
				httpCode = http.StatusInternalServerError
			}
		}

		meta.Code = httpCode
		meta.Error = err
		writeErrorBody(w.impl, httpCode, err)
		return
	}

	meta.Code = w.httpCode
	if w.body == nil {
		w.impl.WriteHeader(w.httpCode)
		return
	}

	encoded, err := json.Marshal(w.body)
	if err != nil {
		err = fmt.Errorf("encode body: %w", err)
		meta.Code = http.StatusInternalServerError
		meta.Error = err
		writeErrorBody(w.impl, http.StatusInternalServerError, err)
		return
	}

	w.impl.Header().Set("Content-Type", "application/json")
	w.impl.WriteHeader(w.httpCode)
	_, _ = w.impl.Write(encoded)
}

func (w *responseWriter) WritePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &p

	writeErrorBody(w.impl, http.StatusInternalServerError, errors.New(p.Message))
}

// writeErrorBody hides details of server errors.
func writeErrorBody(w http.ResponseWriter, httpCode int, err error) {
	body := ErrorBody{Error: http.StatusText(httpCode)}
	if httpCode < http.StatusInternalServerError && err != nil {
		body.Details = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	_ = json.NewEncoder(w).Encode(body)
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}
