// Package tasks defines the asynq task types for the outbound email queue.
package tasks

import (
	"encoding/json"
	"time"

	"medibook/models"

	"github.com/hibiken/asynq"
)

const (
	TypeAppointmentEmail = "email:appointment_confirmation"
	TypePaymentEmail     = "email:payment_confirmation"
)

// defaultOptions gives delivery a few retries with asynq's backoff; a
// confirmation email that still fails after that is dropped, matching the
// best-effort contract.
func defaultOptions() []asynq.Option {
	return []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}
}

// NewAppointmentEmailTask builds the queued task for an appointment
// confirmation.
func NewAppointmentEmailTask(payload models.AppointmentEmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	return asynq.NewTask(TypeAppointmentEmail, b), defaultOptions(), nil
}

// NewPaymentEmailTask builds the queued task for a payment confirmation.
func NewPaymentEmailTask(payload models.PaymentEmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	return asynq.NewTask(TypePaymentEmail, b), defaultOptions(), nil
}
