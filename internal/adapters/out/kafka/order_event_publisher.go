// Package kafka publishes order change events to a Kafka topic for
// downstream consumers such as notifications and analytics.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"wroom/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// OrderEventPublisher implements ports.OrderEventPublisher on top of a
// kafka-go writer. Events are keyed by order ID so all changes of one
// order land on the same partition, in order.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher writing to the given topic.
func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

// PublishOrderChanged serializes the event as JSON and writes it to the topic.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
	})
}

// Close flushes pending messages and releases the writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
