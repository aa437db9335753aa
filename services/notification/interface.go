// Package notification owns the outbound confirmation-email channel: a
// Dispatcher queues messages after the primary write commits, and a Mailer
// delivers them from the queue worker.
package notification

import (
	"context"

	"medibook/models"
)

// Dispatcher queues confirmation emails. Dispatch is decoupled from the
// write it follows; a queueing failure is the caller's to log, never to
// surface or roll back.
type Dispatcher interface {
	EnqueueAppointmentConfirmation(booking models.Booking) error
	EnqueuePaymentConfirmation(booking models.Booking, payment models.Payment) error
}

// Mailer delivers a single templated email.
type Mailer interface {
	Send(ctx context.Context, msg models.EmailMessage) error
}
