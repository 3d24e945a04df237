package event

import (
	"context"

	"github.com/google/uuid"
)

type (
	Event interface {
		ID() uuid.UUID
		Type() string
		AggregateID() uuid.UUID
	}

	Handler[T Event] func(ctx context.Context, event T) error
)
