package pulsar

import (
	"fmt"
	"sync"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/pkg/message"
)

type messageConsumer struct {
	name   string
	topic  message.Topic
	pulsar pulsar.Consumer

	once     sync.Once
	messages chan *message.ConsumerMessage
}

func newMessageConsumer(pulsarConsumer pulsar.Consumer, topic message.Topic) *messageConsumer {
	return &messageConsumer{
		name:     fmt.Sprintf("%s/%s", pulsarConsumer.Subscription(), topic),
		topic:    topic,
		pulsar:   pulsarConsumer,
		messages: make(chan *message.ConsumerMessage),
	}
}

func (c *messageConsumer) Name() string {
	return c.name
}

func (c *messageConsumer) Messages() <-chan *message.ConsumerMessage {
	c.once.Do(func() {
		go c.receive()
	})

	return c.messages
}

// Ack errors are dropped, an unacknowledged message is redelivered by the broker.
func (c *messageConsumer) Ack(msg *message.ConsumerMessage) {
	messageID, ok := msg.Receipt.(pulsar.MessageID)
	if !ok {
		return
	}

	_ = c.pulsar.AckID(messageID)
}

func (c *messageConsumer) Nack(msg *message.ConsumerMessage) {
	messageID, ok := msg.Receipt.(pulsar.MessageID)
	if !ok {
		return
	}

	c.pulsar.NackID(messageID)
}

func (c *messageConsumer) Close() {
	c.pulsar.Close()
}

func (c *messageConsumer) receive() {
	defer close(c.messages)

	for msg := range c.pulsar.Chan() {
		properties := msg.Properties()
		messageID, err := uuid.Parse(properties[messageIDPropertyName])
		if err != nil {
			_ = c.pulsar.AckID(msg.ID())
			continue
		}

		metadata := make(message.Metadata, len(properties))
		for key, value := range properties {
			if key != messageIDPropertyName {
				metadata[key] = value
			}
		}

		c.messages <- &message.ConsumerMessage{
			Message: message.Message{
				ID:       messageID,
				Topic:    c.topic,
				Key:      msg.Key(),
				Payload:  msg.Payload(),
				Metadata: metadata,
			},
			Receipt: msg.ID(),
		}
	}
}
