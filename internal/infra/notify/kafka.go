package notify

import (
	"context"
	"encoding/json"
	"time"

	"venue-reservation/internal/pkg/errs"

	kafka "github.com/segmentio/kafka-go"
)

// KafkaRelay writes events to one topic keyed by room, so the events of a
// date land on one partition in publish order.
type KafkaRelay struct {
	writer *kafka.Writer
}

func NewKafkaRelay(brokers []string, topic string) *KafkaRelay {
	return &KafkaRelay{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *KafkaRelay) Name() string { return "kafka" }

func (k *KafkaRelay) Forward(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}
	key := e.Room()
	if key == "" {
		key = string(e.Type)
	}
	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  e.Timestamp,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "kafka write")
	}
	return nil
}

func (k *KafkaRelay) Close() error {
	return k.writer.Close()
}
