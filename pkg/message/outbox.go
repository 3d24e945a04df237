//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "OutboxStorage=OutboxStorage"
package message

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/pkg/log"
	"github.com/klwxsrx/social-profile-service/pkg/metric"
	"github.com/klwxsrx/social-profile-service/pkg/persistence"
	pkgtime "github.com/klwxsrx/social-profile-service/pkg/time"
)

const (
	defaultOutboxBatchSize    = 100
	defaultOutboxPollInterval = time.Second

	outboxLockName = "message_outbox"
)

type (
	OutboxStorage interface {
		Find(ctx context.Context, scheduledBefore time.Time, limit int) ([]Message, error)
		Store(ctx context.Context, scheduledAt time.Time, msgs ...Message) error
		Delete(ctx context.Context, ids ...uuid.UUID) error
	}

	Outbox interface {
		Worker(context.Context) error
		Process()
	}

	OutboxOption func(*OutboxImpl)

	OutboxImpl struct {
		BatchSize       int
		PollInterval    time.Duration
		Retry           backoff.BackOff
		OnInternalError []func(context.Context, error)
		OnSentMessage   []func(context.Context, *Message, error)
		OnDeletedBatch  []func(context.Context, int, error)

		storage     OutboxStorage
		transaction persistence.Transaction
		producer    Producer
		clock       pkgtime.Clock
		processChan chan struct{}
	}
)

func NewOutbox(
	storage OutboxStorage,
	transaction persistence.Transaction,
	producer Producer,
	clock pkgtime.Clock,
	opts ...OutboxOption,
) *OutboxImpl {
	defaultRetry := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(time.Second),
		backoff.WithMultiplier(2),
		backoff.WithMaxInterval(time.Minute),
		backoff.WithMaxElapsedTime(0),
	)

	o := &OutboxImpl{
		BatchSize:    defaultOutboxBatchSize,
		PollInterval: defaultOutboxPollInterval,
		Retry:        defaultRetry,

		storage:     storage,
		transaction: transaction,
		producer:    producer,
		clock:       clock,
		processChan: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Worker drains the outbox on every Process call and on each poll tick.
func (o *OutboxImpl) Worker(ctx context.Context) error {
	o.Process()

	ticker := time.NewTicker(o.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-o.processChan:
			o.process(ctx)
		case <-ticker.C:
			o.process(ctx)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (o *OutboxImpl) Process() {
	select {
	case o.processChan <- struct{}{}:
	default:
	}
}

func (o *OutboxImpl) process(ctx context.Context) {
	impl := func() error {
		for {
			allProcessed, err := o.processBatch(ctx)
			if err != nil {
				return err
			}
			if allProcessed {
				return nil
			}
		}
	}

	o.Retry.Reset()
	_ = backoff.Retry(impl, backoff.WithContext(o.Retry, ctx))
}

// processBatch commits the deletion of messages sent before a producer failure, the failure is returned afterwards.
func (o *OutboxImpl) processBatch(ctx context.Context) (allProcessed bool, err error) {
	var sendErr error
	err = o.transaction.Execute(ctx, func(ctx context.Context) error {
		msgs, err := o.storage.Find(ctx, o.clock.Now(ctx), o.BatchSize)
		if err != nil {
			err = fmt.Errorf("get messages to send: %w", err)
			for _, fn := range o.OnInternalError {
				fn(ctx, err)
			}
			return err
		}
		if len(msgs) < o.BatchSize {
			allProcessed = true
		}

		ids := make([]uuid.UUID, 0, len(msgs))
		for i := range msgs {
			msg := &msgs[i]
			sendErr = o.producer.Produce(ctx, msg)
			for _, fn := range o.OnSentMessage {
				fn(ctx, msg, sendErr)
			}
			if sendErr != nil {
				break
			}
			ids = append(ids, msg.ID)
		}
		if len(ids) == 0 {
			return nil
		}

		err = o.storage.Delete(ctx, ids...)
		for _, fn := range o.OnDeletedBatch {
			fn(ctx, len(ids), err)
		}
		if err != nil {
			return fmt.Errorf("delete sent messages: %w", err)
		}

		return nil
	}, outboxLockName)
	if err != nil {
		return false, err
	}
	if sendErr != nil {
		return false, fmt.Errorf("send message: %w", sendErr)
	}

	return allProcessed, nil
}

func WithOutboxBatchSize(size int) OutboxOption {
	return func(o *OutboxImpl) {
		if size > 0 {
			o.BatchSize = size
		}
	}
}

func WithOutboxPollInterval(interval time.Duration) OutboxOption {
	return func(o *OutboxImpl) {
		if interval > 0 {
			o.PollInterval = interval
		}
	}
}

func WithOutboxRetry(retry backoff.BackOff) OutboxOption {
	return func(o *OutboxImpl) {
		o.Retry = retry
	}
}

func WithOutboxLogging(
	logger log.Logger,
	infoLevel log.Level,
	errorLevel log.Level,
) OutboxOption {
	return func(o *OutboxImpl) {
		o.OnInternalError = append(o.OnInternalError, func(ctx context.Context, err error) {
			logger.WithError(err).Log(ctx, errorLevel, "message outbox internal error")
		})

		o.OnSentMessage = append(o.OnSentMessage, func(ctx context.Context, msg *Message, err error) {
			logger := logger.WithField("messageID", msg.ID)
			if err != nil {
				logger.WithError(err).Log(ctx, errorLevel, "outbox message sending failed")
			} else {
				logger.Log(ctx, infoLevel, "outbox message sent successfully")
			}
		})

		o.OnDeletedBatch = append(o.OnDeletedBatch, func(ctx context.Context, count int, err error) {
			logger := logger.WithField("count", count)
			if err != nil {
				logger.WithError(err).Log(ctx, errorLevel, "failed to delete sent messages from outbox")
			} else {
				logger.Log(ctx, infoLevel, "sent messages deleted from outbox")
			}
		})
	}
}

func WithOutboxMetrics(metrics metric.Metrics) OutboxOption {
	return func(o *OutboxImpl) {
		o.OnInternalError = append(o.OnInternalError, func(context.Context, error) {
			metrics.Increment("msg_outbox_internal_error_total")
		})

		o.OnSentMessage = append(o.OnSentMessage, func(_ context.Context, msg *Message, err error) {
			metrics.With(metric.Labels{
				"success": strconv.FormatBool(err == nil),
				"topic":   string(msg.Topic),
			}).Increment("msg_outbox_producer_sending_attempts_total")
		})

		o.OnDeletedBatch = append(o.OnDeletedBatch, func(_ context.Context, _ int, err error) {
			metrics.With(metric.Labels{
				"success": strconv.FormatBool(err == nil),
			}).Increment("msg_outbox_delete_from_storage_attempts_total")
		})
	}
}
