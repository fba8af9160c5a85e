package kafka

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the part of *kafka.Reader the consumer drives.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// LookupEventHandler receives each decoded lookup event.
type LookupEventHandler func(ctx context.Context, event LookupEvent) error

type Consumer struct {
	reader MessageReader
}

// NewConsumer joins groupID on the lookup events topic.
func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return NewConsumerWithReader(kafka.NewReader(kafka.ReaderConfig{
		Brokers:           brokers,
		GroupID:           groupID,
		Topic:             topic,
		HeartbeatInterval: 3 * time.Second,
		SessionTimeout:    30 * time.Second,
	}))
}

func NewConsumerWithReader(reader MessageReader) *Consumer {
	return &Consumer{reader: reader}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// ConsumeLookupEvents blocks until ctx is done, the reader fails or handle
// returns an error. Messages that do not decode as lookup events are logged
// and skipped so one bad payload cannot wedge the group.
func (c *Consumer) ConsumeLookupEvents(ctx context.Context, handle LookupEventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, err := DecodeLookupEvent(msg)
		if err != nil {
			log.Printf("skip message %s/%d@%d: %v", msg.Topic, msg.Partition, msg.Offset, err)
			continue
		}
		if err := handle(ctx, event); err != nil {
			return err
		}
	}
}
