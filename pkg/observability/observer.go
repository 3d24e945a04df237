package observability

import (
	"context"

	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/pkg/log"
)

const LogFieldRequestID = "requestID"

type (
	// Observer carries the request id through HTTP calls and messages caused by one request.
	Observer interface {
		RequestID(context.Context) (string, bool)
		WithRequestID(context.Context, string) context.Context
	}

	requestIDContextKey struct{}

	observer struct {
		logger log.Logger
	}
)

func New() Observer {
	return observer{}
}

// NewLogging also puts the request id into the log fields of the context.
func NewLogging(logger log.Logger) Observer {
	return observer{logger: logger}
}

// WithRequestIDOrNew starts a new request id when the caller did not pass one.
func WithRequestIDOrNew(ctx context.Context, observer Observer, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}

	return observer.WithRequestID(ctx, requestID)
}

func (o observer) RequestID(ctx context.Context) (string, bool) {
	requestID, _ := ctx.Value(requestIDContextKey{}).(string)
	return requestID, requestID != ""
}

func (o observer) WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}

	ctx = context.WithValue(ctx, requestIDContextKey{}, requestID)
	if o.logger == nil {
		return ctx
	}

	return o.logger.WithContext(ctx, log.Fields{LogFieldRequestID: requestID})
}
