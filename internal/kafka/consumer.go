package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// messageReader is the part of *kafka.Reader the consumer loop needs.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventHandler processes one decoded record event.
type EventHandler func(ctx context.Context, event RecordEvent) error

// Consumer reads record events for a consumer group and commits each message
// once its handler has run.
type Consumer struct {
	reader messageReader
	log    *slog.Logger
}

func NewConsumer(brokers []string, groupID, topic string, log *slog.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume blocks until ctx is done or the reader fails. Messages that are not
// record events, and events the handler rejects, are logged and committed so
// a single bad message cannot stall the group.
func (c *Consumer) Consume(ctx context.Context, handle EventHandler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}

		event, err := DecodeRecordEvent(msg)
		switch {
		case err != nil:
			c.log.Warn("skipping undecodable message", "topic", msg.Topic, "offset", msg.Offset, "error", err)
		default:
			if err := handle(ctx, event); err != nil {
				c.log.Warn("record event handler failed", "event", event.ID, "type", event.Type, "error", err)
			}
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("commit offset %d: %w", msg.Offset, err)
		}
	}
}

// DecodeRecordEvent unpacks a message written by Producer.
func DecodeRecordEvent(msg kafka.Message) (RecordEvent, error) {
	var event RecordEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, fmt.Errorf("decode record event: %w", err)
	}
	return event, nil
}
