//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Consumer=Consumer,ConsumerProvider=ConsumerProvider,Producer=Producer,Broker=Broker"
package message

import "context"

// ConsumptionTypeSingle delivers a topic to one active consumer of a subscriber at a time, keeping the order of keys.
const ConsumptionTypeSingle ConsumptionType = "single"

type (
	ConsumptionType string

	// ConsumerMessage carries the broker receipt the consumer needs to acknowledge the message.
	ConsumerMessage struct {
		Message Message
		Receipt any
	}

	// Consumer closes Messages when the broker subscription ends.
	Consumer interface {
		Name() string
		Messages() <-chan *ConsumerMessage
		Ack(msg *ConsumerMessage)
		Nack(msg *ConsumerMessage)
		Close()
	}

	ConsumerProvider interface {
		Consumer(Topic, SubscriberName, ConsumptionType) (Consumer, error)
	}

	Producer interface {
		Produce(ctx context.Context, msg *Message) error
	}

	Broker interface {
		ConsumerProvider
		Producer
	}
)
