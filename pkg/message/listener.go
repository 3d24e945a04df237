package message

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/social-profile-service/pkg/log"
	"github.com/klwxsrx/social-profile-service/pkg/metric"
	"github.com/klwxsrx/social-profile-service/pkg/observability"
	"github.com/klwxsrx/social-profile-service/pkg/worker"
)

const defaultHandlerMaxRetries = 5

type (
	ListenerImpl struct {
		NewHandlerRetry       func() backoff.BackOff
		OnBeforeHandleMessage []func(context.Context, *Message) context.Context
		OnHandlerResult       []func(_ context.Context, _ *Message, _ error, duration time.Duration)
		OnPanic               []func(_ context.Context, _ *Message, panicMsg any, stack []byte)

		consumer Consumer
		handler  Handler
	}

	ListenerOption func(*ListenerImpl)
)

// NewListener handles consumer messages one at a time, so per-key ordering is preserved.
// A message whose handler still fails after the retries is negatively acknowledged for redelivery.
func NewListener(consumer Consumer, handler Handler, opts ...ListenerOption) worker.ErrorJob {
	impl := &ListenerImpl{
		NewHandlerRetry: defaultHandlerRetry,
		consumer:        consumer,
		handler:         handler,
	}
	for _, opt := range opts {
		opt(impl)
	}

	return impl.consumerWorker
}

func (l *ListenerImpl) consumerWorker(ctx context.Context) error {
	defer l.consumer.Close()

	for {
		select {
		case msg, ok := <-l.consumer.Messages():
			if !ok {
				return fmt.Errorf("consumer %s closed messages channel", l.consumer.Name())
			}
			l.handle(ctx, msg)
		case <-ctx.Done():
			return nil
		}
	}
}

func (l *ListenerImpl) handle(ctx context.Context, consumerMsg *ConsumerMessage) {
	msg := &consumerMsg.Message
	for _, fn := range l.OnBeforeHandleMessage {
		ctx = fn(ctx, msg)
	}

	startedAt := time.Now()
	err := backoff.Retry(func() error {
		return l.handleWithRecover(ctx, msg)
	}, backoff.WithContext(l.NewHandlerRetry(), ctx))
	for _, fn := range l.OnHandlerResult {
		fn(ctx, msg, err, time.Since(startedAt))
	}

	if err != nil {
		l.consumer.Nack(consumerMsg)
		return
	}

	l.consumer.Ack(consumerMsg)
}

func (l *ListenerImpl) handleWithRecover(ctx context.Context, msg *Message) (err error) {
	defer func() {
		panicMsg := recover()
		if panicMsg == nil {
			return
		}

		stack := debug.Stack()
		for _, fn := range l.OnPanic {
			fn(ctx, msg, panicMsg, stack)
		}
		err = fmt.Errorf("message handled with panic: %v", panicMsg)
	}()

	return l.handler(ctx, msg)
}

// WithHandlerRetry sets the retry policy, newRetry is called for every message since listeners run concurrently.
func WithHandlerRetry(newRetry func() backoff.BackOff) ListenerOption {
	return func(l *ListenerImpl) {
		l.NewHandlerRetry = newRetry
	}
}

func defaultHandlerRetry() backoff.BackOff {
	return backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(100*time.Millisecond),
		backoff.WithMultiplier(2),
		backoff.WithMaxInterval(5*time.Second),
		backoff.WithMaxElapsedTime(0),
	), defaultHandlerMaxRetries)
}

func WithObservability(observer observability.Observer) ListenerOption {
	return func(l *ListenerImpl) {
		l.OnBeforeHandleMessage = append(l.OnBeforeHandleMessage, func(ctx context.Context, msg *Message) context.Context {
			return observability.WithRequestIDOrNew(ctx, observer, msg.Metadata[MetadataRequestID])
		})
	}
}

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ListenerOption {
	return func(l *ListenerImpl) {
		l.OnHandlerResult = append(l.OnHandlerResult, func(ctx context.Context, msg *Message, err error, _ time.Duration) {
			logger := logger.With(log.Fields{
				"consumer":  l.consumer.Name(),
				"topic":     msg.Topic,
				"messageID": msg.ID,
			})
			if err != nil {
				logger.WithError(err).Log(ctx, errorLevel, "failed to handle message")
			} else {
				logger.Log(ctx, infoLevel, "message handled")
			}
		})

		l.OnPanic = append(l.OnPanic, func(ctx context.Context, msg *Message, panicMsg any, stack []byte) {
			logger.With(log.Fields{
				"consumer":   l.consumer.Name(),
				"messageID":  msg.ID,
				"panic":      fmt.Sprintf("%v", panicMsg),
				"stacktrace": string(stack),
			}).Error(ctx, "message handler panicked")
		})
	}
}

func WithMetrics(metrics metric.Metrics) ListenerOption {
	return func(l *ListenerImpl) {
		l.OnHandlerResult = append(l.OnHandlerResult, func(_ context.Context, msg *Message, err error, duration time.Duration) {
			metrics.With(metric.Labels{
				"consumer": l.consumer.Name(),
				"topic":    string(msg.Topic),
				"success":  strconv.FormatBool(err == nil),
			}).Duration("msg_listener_message_handle_duration_seconds", duration)
		})
	}
}
