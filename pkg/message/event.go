package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/klwxsrx/social-profile-service/pkg/event"
)

var ErrUnknownEventType = errors.New("unknown event type")

type (
	EventHandler struct {
		EventType string
		Handle    func(ctx context.Context, data json.RawMessage) error
	}

	eventPayload struct {
		EventType string          `json:"type"`
		EventData json.RawMessage `json:"data"`
	}
)

func SerializeEvent(evt event.Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("encode event %s: %w", evt.Type(), err)
	}

	payload, err := json.Marshal(eventPayload{
		EventType: evt.Type(),
		EventData: data,
	})
	if err != nil {
		return nil, fmt.Errorf("encode event %s payload: %w", evt.Type(), err)
	}

	return payload, nil
}

func RegisterEventHandler[T event.Event](handler event.Handler[T]) EventHandler {
	var blank T
	eventType := blank.Type()

	return EventHandler{
		EventType: eventType,
		Handle: func(ctx context.Context, data json.RawMessage) error {
			var evt T
			if err := json.Unmarshal(data, &evt); err != nil {
				return fmt.Errorf("decode event %s: %w", eventType, err)
			}

			return handler(ctx, evt)
		},
	}
}

// NewEventHandler acknowledges events of types without a registered handler.
func NewEventHandler(handlers ...EventHandler) (Handler, error) {
	handlersByType := make(map[string][]EventHandler, len(handlers))
	for _, handler := range handlers {
		if handler.EventType == "" {
			return nil, errors.New("event handler must declare a non-empty event type")
		}
		handlersByType[handler.EventType] = append(handlersByType[handler.EventType], handler)
	}

	return func(ctx context.Context, msg *Message) error {
		var payload eventPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode message %v payload: %w", msg.ID, err)
		}

		for _, handler := range handlersByType[payload.EventType] {
			if err := handler.Handle(ctx, payload.EventData); err != nil {
				return fmt.Errorf("handle event %s: %w", payload.EventType, err)
			}
		}

		return nil
	}, nil
}
