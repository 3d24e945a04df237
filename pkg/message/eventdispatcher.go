package message

import (
	"context"
	"fmt"

	"github.com/klwxsrx/social-profile-service/pkg/event"
	"github.com/klwxsrx/social-profile-service/pkg/observability"
	pkgtime "github.com/klwxsrx/social-profile-service/pkg/time"
)

type eventDispatcher struct {
	topic    Topic
	storage  OutboxStorage
	observer observability.Observer
	clock    pkgtime.Clock
}

// NewEventDispatcher stores events in the outbox, so they are published only if the surrounding transaction commits.
func NewEventDispatcher(
	topic Topic,
	storage OutboxStorage,
	observer observability.Observer,
	clock pkgtime.Clock,
) event.Dispatcher {
	return eventDispatcher{
		topic:    topic,
		storage:  storage,
		observer: observer,
		clock:    clock,
	}
}

func (d eventDispatcher) Dispatch(ctx context.Context, events ...event.Event) error {
	if len(events) == 0 {
		return nil
	}

	metadata := make(Metadata)
	if requestID, ok := d.observer.RequestID(ctx); ok {
		metadata[MetadataRequestID] = requestID
	}

	msgs := make([]Message, 0, len(events))
	for _, evt := range events {
		payload, err := SerializeEvent(evt)
		if err != nil {
			return err
		}

		msgs = append(msgs, Message{
			ID:       evt.ID(),
			Topic:    d.topic,
			Key:      evt.AggregateID().String(),
			Payload:  payload,
			Metadata: metadata,
		})
	}

	err := d.storage.Store(ctx, d.clock.Now(ctx), msgs...)
	if err != nil {
		return fmt.Errorf("store events to outbox: %w", err)
	}

	return nil
}
