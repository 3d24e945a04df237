package message

import (
	"fmt"

	"github.com/klwxsrx/social-profile-service/pkg/worker"
)

type (
	HandlerRegistry interface {
		RegisterEventHandlers(
			subscriber SubscriberName,
			topic Topic,
			consumptionType ConsumptionType,
			handlers ...EventHandler,
		) error
	}

	BusListener interface {
		HandlerRegistry
		Workers() []worker.ErrorJob
	}

	busListener struct {
		consumers ConsumerProvider
		opts      []ListenerOption
		listeners []worker.ErrorJob
		topics    map[string]struct{}
	}
)

func NewBusListener(consumers ConsumerProvider, opts ...ListenerOption) BusListener {
	return &busListener{
		consumers: consumers,
		opts:      opts,
		topics:    make(map[string]struct{}),
	}
}

func (b *busListener) RegisterEventHandlers(
	subscriber SubscriberName,
	topic Topic,
	consumptionType ConsumptionType,
	handlers ...EventHandler,
) error {
	key := fmt.Sprintf("%s/%s", subscriber, topic)
	if _, ok := b.topics[key]; ok {
		return fmt.Errorf("handlers for topic %s and subscriber %s are already registered", topic, subscriber)
	}

	handler, err := NewEventHandler(handlers...)
	if err != nil {
		return fmt.Errorf("register handlers for topic %s: %w", topic, err)
	}

	consumer, err := b.consumers.Consumer(topic, subscriber, consumptionType)
	if err != nil {
		return fmt.Errorf("create consumer for topic %s: %w", topic, err)
	}

	b.topics[key] = struct{}{}
	b.listeners = append(b.listeners, NewListener(consumer, handler, b.opts...))

	return nil
}

func (b *busListener) Workers() []worker.ErrorJob {
	return b.listeners
}
