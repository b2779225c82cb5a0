// Package kafka implements the notification fan-out on top of a Kafka
// cluster. Topics are created on demand, one per restaurant or order, so
// the writer leaves its topic unset and routes per message.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// Publisher emits JSON-encoded events. Delivery is best-effort: failures
// are logged and swallowed so a completed operation is never failed by a
// notification problem.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewPublisher creates a publisher writing to the given brokers.
func NewPublisher(brokers []string, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
		logger: logger,
	}
}

// Publish sends the payload to the topic. Safe for concurrent producers.
func (p *Publisher) Publish(ctx context.Context, topic string, payload any) {
	value, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("event payload not serializable", "topic", topic, "error", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: value,
	})
	if err != nil {
		p.logger.Error("event delivery failed", "topic", topic, "error", err)
	}
}

// Close flushes pending batches and releases the underlying connections.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
