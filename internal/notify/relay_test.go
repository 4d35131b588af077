package notify

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"restaurant-backend/internal/domain"
	"restaurant-backend/internal/mocks"
)

func TestRelayDeliver(t *testing.T) {
	confirmation := domain.ConfirmationMessage{
		Type:      "order_confirmation",
		OrderID:   uuid.New(),
		Recipient: "a@x.com",
		Subject:   "Your Order Confirmation",
		Body:      "Dear alice, your order has been placed.",
	}

	t.Run("delivers_confirmation", func(t *testing.T) {
		mailer := mocks.NewMailer(t)
		relay := NewRelay(nil, mailer)

		mailer.On("Send", confirmation.Recipient, confirmation.Subject, confirmation.Body).
			Return(nil).Once()

		relay.Deliver(confirmation)
	})

	t.Run("skips_unknown_message_type", func(t *testing.T) {
		mailer := mocks.NewMailer(t)
		relay := NewRelay(nil, mailer)

		other := confirmation
		other.Type = "order_cancelled"
		relay.Deliver(other)

		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("send_failure_is_swallowed", func(t *testing.T) {
		mailer := mocks.NewMailer(t)
		relay := NewRelay(nil, mailer)

		mailer.On("Send", confirmation.Recipient, confirmation.Subject, confirmation.Body).
			Return(assert.AnError).Once()

		assert.NotPanics(t, func() { relay.Deliver(confirmation) })
	})
}
