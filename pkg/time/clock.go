package time

import (
	"context"
	"time"
)

type (
	// Clock returns the time pinned to the context with WithNow, or the wall clock.
	Clock interface {
		Now(context.Context) time.Time
	}

	nowKey struct{}

	contextClock struct{}
)

func NewClock() Clock {
	return contextClock{}
}

func (contextClock) Now(ctx context.Context) time.Time {
	if now, ok := ctx.Value(nowKey{}).(time.Time); ok {
		return now
	}

	return time.Now()
}

func WithNow(ctx context.Context, now time.Time) context.Context {
	return context.WithValue(ctx, nowKey{}, now)
}

// Millis drops the precision that timestamps stored as unix milliseconds cannot keep.
func Millis(t time.Time) time.Time {
	return time.UnixMilli(t.UnixMilli())
}
