package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	EventLookupSucceeded = "lookup_succeeded"
	EventLookupFailed    = "lookup_failed"
)

type LookupEvent struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Identifier   string    `json:"identifier"`
	Normalized   string    `json:"normalized"`
	Date         string    `json:"date"`
	FlightNumber string    `json:"flight_number,omitempty"`
	Origin       string    `json:"origin,omitempty"`
	Destination  string    `json:"destination,omitempty"`
	Error        string    `json:"error,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func DecodeLookupEvent(msg kafka.Message) (LookupEvent, error) {
	var event LookupEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return LookupEvent{}, fmt.Errorf("decode lookup event: %w", err)
	}
	return event, nil
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
