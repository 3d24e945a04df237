package message_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/social-profile-service/pkg/message"
)

type itemPinned struct {
	EventID uuid.UUID `json:"eventID"`
	ItemID  uuid.UUID `json:"itemID"`
	Note    string    `json:"note"`
}

func (e itemPinned) ID() uuid.UUID          { return e.EventID }
func (e itemPinned) Type() string           { return "item.pinned" }
func (e itemPinned) AggregateID() uuid.UUID { return e.ItemID }

type itemUnpinned struct {
	EventID uuid.UUID `json:"eventID"`
	ItemID  uuid.UUID `json:"itemID"`
}

func (e itemUnpinned) ID() uuid.UUID          { return e.EventID }
func (e itemUnpinned) Type() string           { return "item.unpinned" }
func (e itemUnpinned) AggregateID() uuid.UUID { return e.ItemID }

func TestEventHandler_DispatchesByType(t *testing.T) {
	t.Parallel()
	evt := itemPinned{EventID: uuid.New(), ItemID: uuid.New(), Note: "first"}

	var received *itemPinned
	handler, err := message.NewEventHandler(
		message.RegisterEventHandler(func(_ context.Context, e itemPinned) error {
			received = &e
			return nil
		}),
		message.RegisterEventHandler(func(context.Context, itemUnpinned) error {
			return errors.New("unexpected call")
		}),
	)
	require.NoError(t, err)

	payload, err := message.SerializeEvent(evt)
	require.NoError(t, err)

	err = handler(context.Background(), &message.Message{ID: evt.ID(), Payload: payload})
	require.NoError(t, err)
	require.NotNil(t, received)
	assert.Equal(t, evt, *received)
}

func TestEventHandler_IgnoresUnknownType(t *testing.T) {
	t.Parallel()
	handler, err := message.NewEventHandler(
		message.RegisterEventHandler(func(context.Context, itemPinned) error {
			return errors.New("unexpected call")
		}),
	)
	require.NoError(t, err)

	payload, err := message.SerializeEvent(itemUnpinned{EventID: uuid.New(), ItemID: uuid.New()})
	require.NoError(t, err)

	assert.NoError(t, handler(context.Background(), &message.Message{Payload: payload}))
}

func TestEventHandler_ReturnsHandlerError(t *testing.T) {
	t.Parallel()
	expectedErr := errors.New("handler failed")
	handler, err := message.NewEventHandler(
		message.RegisterEventHandler(func(context.Context, itemPinned) error {
			return expectedErr
		}),
	)
	require.NoError(t, err)

	payload, err := message.SerializeEvent(itemPinned{EventID: uuid.New(), ItemID: uuid.New()})
	require.NoError(t, err)

	assert.ErrorIs(t, handler(context.Background(), &message.Message{Payload: payload}), expectedErr)
}

func TestEventHandler_RejectsMalformedPayload(t *testing.T) {
	t.Parallel()
	handler, err := message.NewEventHandler()
	require.NoError(t, err)

	assert.Error(t, handler(context.Background(), &message.Message{Payload: []byte("not json")}))
}
