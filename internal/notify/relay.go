package notify

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"restaurant-backend/internal/domain"
)

type Mailer interface {
	Send(recipient, subject, body string) error
}

// Relay consumes the confirmations topic and delivers each message over
// the mailer. Delivery is at-most-once: a failed send is logged and the
// message is skipped.
type Relay struct {
	Reader *kafka.Reader
	Mailer Mailer
}

func NewRelay(reader *kafka.Reader, mailer Mailer) *Relay {
	return &Relay{Reader: reader, Mailer: mailer}
}

func (r *Relay) Start(ctx context.Context) {
	log.Println("Starting order confirmation relay...")
	for {
		message, err := r.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading confirmation message: %v", err)
			continue
		}

		var msg domain.ConfirmationMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling confirmation message: %v", err)
			continue
		}

		r.Deliver(msg)
	}
}

func (r *Relay) Deliver(msg domain.ConfirmationMessage) {
	if msg.Type != "order_confirmation" {
		return
	}
	if err := r.Mailer.Send(msg.Recipient, msg.Subject, msg.Body); err != nil {
		log.Printf("Error delivering order confirmation to %s: %v", msg.Recipient, err)
		return
	}
	log.Printf("Order confirmation for order %s delivered to %s", msg.OrderID, msg.Recipient)
}
