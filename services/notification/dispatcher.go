package notification

import (
	"fmt"

	"medibook/models"
	"medibook/services/tasks"
	"medibook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqDispatcher queues confirmation emails on the asynq broker.
type AsynqDispatcher struct {
	Client *asynq.Client
}

// NewAsynqDispatcher creates a Dispatcher backed by the given asynq client.
func NewAsynqDispatcher(client *asynq.Client) (*AsynqDispatcher, error) {
	if client == nil {
		return nil, fmt.Errorf("notification dispatcher initialization error: asynq client is nil")
	}
	return &AsynqDispatcher{Client: client}, nil
}

// EnqueueAppointmentConfirmation queues the appointment confirmation email
// for a freshly admitted booking.
func (d *AsynqDispatcher) EnqueueAppointmentConfirmation(b models.Booking) error {
	task, opts, err := tasks.NewAppointmentEmailTask(models.AppointmentEmailPayload{
		BookingID:     b.ID,
		Email:         b.Email,
		PatientName:   b.PatientName,
		TreatmentName: b.TreatmentName,
		Date:          b.Date,
		Slot:          b.Slot,
	})
	if err != nil {
		return fmt.Errorf("failed to build appointment email task: %w", err)
	}

	info, err := d.Client.Enqueue(task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue appointment email: %w", err)
	}
	utils.GetLogger().Debug("queued appointment confirmation email",
		zap.String("taskID", info.ID), zap.String("bookingID", b.ID))
	return nil
}

// EnqueuePaymentConfirmation queues the payment confirmation email for a
// just-confirmed booking.
func (d *AsynqDispatcher) EnqueuePaymentConfirmation(b models.Booking, p models.Payment) error {
	task, opts, err := tasks.NewPaymentEmailTask(models.PaymentEmailPayload{
		BookingID:     b.ID,
		Email:         b.Email,
		PatientName:   b.PatientName,
		TreatmentName: b.TreatmentName,
		Date:          b.Date,
		Slot:          b.Slot,
		Amount:        p.Amount,
		Currency:      p.Currency,
		TransactionID: p.TransactionID,
	})
	if err != nil {
		return fmt.Errorf("failed to build payment email task: %w", err)
	}

	info, err := d.Client.Enqueue(task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue payment email: %w", err)
	}
	utils.GetLogger().Debug("queued payment confirmation email",
		zap.String("taskID", info.ID), zap.String("bookingID", b.ID))
	return nil
}
