package booking

import (
	"context"
	"fmt"

	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmPayment marks a booking paid, attaches the transaction id, and
// appends a payment record. The two writes are deliberately independent, not
// wrapped in a transaction: a failure after the booking update leaves a
// paid-but-unrecorded-payment state. Callers of this API accept that window.
// Confirming a booking that is already paid performs no writes and returns
// the existing state.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, bookingID string, info models.PaymentInfo) (*ConfirmResult, error) {
	logger := utils.GetLogger()

	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to locate booking %s: %w", bookingID, err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	if b.Paid {
		result := &ConfirmResult{Booking: b}
		if payments, perr := s.Payments.GetByBookingID(bookingID); perr == nil && len(payments) > 0 {
			result.Payment = &payments[0]
		}
		return result, nil
	}

	updated, err := s.Bookings.MarkPaid(bookingID, info.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark booking %s paid: %w", bookingID, err)
	}
	if updated == nil {
		return nil, ErrBookingNotFound
	}

	payment := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     updated.ID,
		Amount:        info.Amount,
		Currency:      info.Currency,
		TransactionID: info.TransactionID,
		Email:         updated.Email,
		TreatmentName: updated.TreatmentName,
		Date:          updated.Date,
		Slot:          updated.Slot,
	}
	result := &ConfirmResult{Booking: updated, Payment: payment}

	if err := s.Payments.Create(payment); err != nil {
		// Second write of the pair; the booking stays paid.
		logger.Error("failed to record payment; booking is paid but the ledger is missing its entry",
			zap.String("bookingID", updated.ID),
			zap.String("transactionID", info.TransactionID),
			zap.Error(err))
		result.Payment = nil
	}

	if err := s.Notifier.EnqueuePaymentConfirmation(*updated, *payment); err != nil {
		logger.Error("failed to queue payment confirmation email",
			zap.String("bookingID", updated.ID), zap.Error(err))
	}

	return result, nil
}
