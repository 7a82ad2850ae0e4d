package relay

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chatbot-service/internal/model"
)

type KafkaProducer interface {
	ProduceMessage(ctx context.Context, message any, key any) error
}

// Broker is the multi-instance variant of the relay: Publish goes through
// kafka instead of process memory, and a kafka consumer feeds the
// instance-local queue via Handler. The Publish/Next contract is the same
// as the in-memory relay.
type Broker struct {
	producer KafkaProducer
	local    *Relay
	logger   logger_lib.LoggerInterface
}

func NewBroker(producer KafkaProducer, logger logger_lib.LoggerInterface) *Broker {
	return &Broker{
		producer: producer,
		local:    New(),
		logger:   logger,
	}
}

// Publish produces the event to the notification topic, keyed by
// conversation so per-conversation order survives partitioning. Delivery
// is best-effort: a produce failure is logged and the event is lost.
func (b *Broker) Publish(event model.NotificationEvent) {
	if err := b.producer.ProduceMessage(context.Background(), event, event.ConversationID); err != nil {
		b.logger.Error(fmt.Sprintf("failed to produce notification event: %v", err))
	}
}

// Handler is registered with the kafka-lib consumer; it moves broker
// messages into the local queue where Next picks them up.
func (b *Broker) Handler(ctx context.Context, msg []byte) error {
	var event model.NotificationEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal notification event: %w", err)
	}
	b.local.Publish(event)
	return nil
}

func (b *Broker) Next(ctx context.Context) (model.NotificationEvent, error) {
	return b.local.Next(ctx)
}

func (b *Broker) Close() {
	b.local.Close()
}
