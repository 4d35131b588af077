package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"restaurant-backend/internal/domain"
	"restaurant-backend/internal/service"
)

// KafkaConfirmationPublisher emits order confirmations to the
// notifications topic. The caller treats failures as non-fatal.
type KafkaConfirmationPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaConfirmationPublisher(writer *kafka.Writer) *KafkaConfirmationPublisher {
	return &KafkaConfirmationPublisher{Writer: writer}
}

var _ service.ConfirmationPublisher = (*KafkaConfirmationPublisher)(nil)

func (p *KafkaConfirmationPublisher) PublishConfirmation(ctx context.Context, msg domain.ConfirmationMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Recipient),
		Value: payload,
	})
}
