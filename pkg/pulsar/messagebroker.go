package pulsar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/social-profile-service/pkg/log"
	"github.com/klwxsrx/social-profile-service/pkg/message"
)

const (
	defaultConnectionTimeout = 20 * time.Second

	messageIDPropertyName = "messageID"
)

type (
	Config struct {
		Address           string
		ConnectionTimeout time.Duration
	}

	MessageBroker struct {
		client pulsar.Client

		producersMutex sync.Mutex
		producers      map[message.Topic]pulsar.Producer
	}
)

func NewMessageBroker(config *Config, logger log.Logger) (*MessageBroker, error) {
	c, err := pulsar.NewClient(pulsar.ClientOptions{
		URL:    fmt.Sprintf("pulsar://%s", config.Address),
		Logger: NewLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("create pulsar client: %w", err)
	}

	broker := &MessageBroker{
		client:    c,
		producers: make(map[message.Topic]pulsar.Producer),
	}

	connTimeout := defaultConnectionTimeout
	if config.ConnectionTimeout > 0 {
		connTimeout = config.ConnectionTimeout
	}
	err = broker.testCreateProducer(connTimeout)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	return broker, nil
}

func (b *MessageBroker) Produce(ctx context.Context, msg *message.Message) error {
	producer, err := b.getOrCreateProducer(msg.Topic)
	if err != nil {
		return err
	}

	properties := make(map[string]string, len(msg.Metadata)+1)
	for key, value := range msg.Metadata {
		properties[key] = value
	}
	properties[messageIDPropertyName] = msg.ID.String()

	_, err = producer.Send(ctx, &pulsar.ProducerMessage{
		Payload:    msg.Payload,
		Key:        msg.Key,
		Properties: properties,
	})
	if err != nil {
		return fmt.Errorf("send message %v to topic %s: %w", msg.ID, msg.Topic, err)
	}

	return nil
}

func (b *MessageBroker) Consumer(
	topic message.Topic,
	subscriber message.SubscriberName,
	consumptionType message.ConsumptionType,
) (message.Consumer, error) {
	if consumptionType != message.ConsumptionTypeSingle {
		return nil, fmt.Errorf("unsupported consumption type %s", consumptionType)
	}

	consumer, err := b.client.Subscribe(pulsar.ConsumerOptions{
		Topic:            string(topic),
		SubscriptionName: string(subscriber),
		Type:             pulsar.Failover,
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe to topic %s by %s: %w", topic, subscriber, err)
	}

	return newMessageConsumer(consumer, topic), nil
}

func (b *MessageBroker) Close() {
	b.producersMutex.Lock()
	defer b.producersMutex.Unlock()

	for _, producer := range b.producers {
		producer.Close()
	}
	b.client.Close()
}

func (b *MessageBroker) getOrCreateProducer(topic message.Topic) (pulsar.Producer, error) {
	b.producersMutex.Lock()
	defer b.producersMutex.Unlock()

	producer, ok := b.producers[topic]
	if ok {
		return producer, nil
	}

	producer, err := b.client.CreateProducer(pulsar.ProducerOptions{
		Topic: string(topic),
	})
	if err != nil {
		return nil, fmt.Errorf("create producer for topic %s: %w", topic, err)
	}

	b.producers[topic] = producer
	return producer, nil
}

func (b *MessageBroker) testCreateProducer(connTimeout time.Duration) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = connTimeout / 4
	eb.MaxElapsedTime = connTimeout

	return backoff.Retry(func() error {
		p, err := b.client.CreateProducer(pulsar.ProducerOptions{
			Topic: "non-persistent://public/default/test-topic",
		})
		if err == nil {
			p.Close()
		}
		return err
	}, eb)
}
