// Package events publishes domain events to Kafka. Publishing is best
// effort: handlers log failures and never fail the request over them.
package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

const (
	TopicOrders = "order_events"
	TopicTables = "table_events"
	TopicUsers  = "user_events"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: w}
}

// Publish sends one event keyed by the owning entity id. A nil Producer is
// a no-op so the server runs without a broker configured.
func (p *Producer) Publish(ctx context.Context, topic, key string, event any) error {
	if p == nil {
		return nil
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	})
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
