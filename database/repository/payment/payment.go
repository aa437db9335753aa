package paymentRepo

import "medibook/models"

// PaymentRepository persists the append-only payment ledger.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByBookingID(bookingID string) ([]models.Payment, error)
}
