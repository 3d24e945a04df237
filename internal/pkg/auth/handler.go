package auth

import (
	"context"

	"github.com/klwxsrx/social-profile-service/pkg/event"
)

// WithServiceHandler runs the event handler on behalf of the service principal.
func WithServiceHandler[T event.Event](name ServiceName, handler event.Handler[T]) event.Handler[T] {
	return func(ctx context.Context, evt T) error {
		return handler(WithServiceAuthentication(ctx, name), evt)
	}
}
