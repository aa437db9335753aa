package booking

import (
	"context"
	"errors"
	"testing"

	"medibook/models"
)

func admit(t *testing.T, svc *DefaultBookingService) *models.Booking {
	t.Helper()
	result, err := svc.SubmitBooking(context.Background(), sampleBooking())
	if err != nil || !result.Success {
		t.Fatalf("seed booking failed: %v %+v", err, result)
	}
	return result.Booking
}

func TestConfirmPaymentMarksPaidAndRecordsPayment(t *testing.T) {
	svc, bookings, payments, dispatcher := newTestService()
	b := admit(t, svc)

	info := models.PaymentInfo{TransactionID: "txn_123", Amount: 80, Currency: "usd"}
	result, err := svc.ConfirmPayment(context.Background(), b.ID, info)
	if err != nil {
		t.Fatalf("ConfirmPayment error: %v", err)
	}

	if !result.Booking.Paid {
		t.Error("booking should be paid")
	}
	if result.Booking.TransactionID != "txn_123" {
		t.Errorf("transactionID = %q, want txn_123", result.Booking.TransactionID)
	}

	stored, _ := bookings.GetByID(b.ID)
	if stored == nil || !stored.Paid {
		t.Error("paid flag not persisted")
	}

	ledger, _ := payments.GetByBookingID(b.ID)
	if len(ledger) != 1 {
		t.Fatalf("payment records = %d, want exactly 1", len(ledger))
	}
	if ledger[0].TransactionID != "txn_123" || ledger[0].Amount != 80 {
		t.Errorf("payment record fields wrong: %+v", ledger[0])
	}
	if ledger[0].Email != b.Email || ledger[0].TreatmentName != b.TreatmentName || ledger[0].Date != b.Date {
		t.Errorf("payment record should copy booking identifying fields: %+v", ledger[0])
	}

	if len(dispatcher.payments) != 1 {
		t.Errorf("expected 1 queued payment email, got %d", len(dispatcher.payments))
	}
}

// The booking update and the payment insert are two independent writes. When
// the second fails the first is not unwound: the booking stays paid and the
// ledger is short one entry. That window is part of the service's contract.
func TestConfirmPaymentLedgerFailureLeavesBookingPaid(t *testing.T) {
	svc, bookings, payments, _ := newTestService()
	b := admit(t, svc)
	payments.fail = true

	info := models.PaymentInfo{TransactionID: "txn_456", Amount: 80, Currency: "usd"}
	result, err := svc.ConfirmPayment(context.Background(), b.ID, info)
	if err != nil {
		t.Fatalf("ConfirmPayment error: %v", err)
	}

	stored, _ := bookings.GetByID(b.ID)
	if stored == nil || !stored.Paid {
		t.Error("booking must stay paid even when the ledger write fails")
	}
	if result.Payment != nil {
		t.Error("result must not claim a ledger entry that was never written")
	}
	if ledger, _ := payments.GetByBookingID(b.ID); len(ledger) != 0 {
		t.Errorf("ledger should be empty, got %d records", len(ledger))
	}
}

func TestConfirmPaymentNotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	info := models.PaymentInfo{TransactionID: "txn_789"}
	if _, err := svc.ConfirmPayment(context.Background(), "missing", info); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("err = %v, want ErrBookingNotFound", err)
	}
}

func TestConfirmPaymentAlreadyPaidWritesNothing(t *testing.T) {
	svc, _, payments, dispatcher := newTestService()
	b := admit(t, svc)

	info := models.PaymentInfo{TransactionID: "txn_123", Amount: 80, Currency: "usd"}
	if _, err := svc.ConfirmPayment(context.Background(), b.ID, info); err != nil {
		t.Fatalf("first confirmation error: %v", err)
	}

	again, err := svc.ConfirmPayment(context.Background(), b.ID, models.PaymentInfo{TransactionID: "txn_999"})
	if err != nil {
		t.Fatalf("second confirmation error: %v", err)
	}

	// The booking is mutated exactly once; the original transaction wins.
	if again.Booking.TransactionID != "txn_123" {
		t.Errorf("transactionID = %q, want the original txn_123", again.Booking.TransactionID)
	}
	if ledger, _ := payments.GetByBookingID(b.ID); len(ledger) != 1 {
		t.Errorf("ledger records = %d, want still 1", len(ledger))
	}
	if len(dispatcher.payments) != 1 {
		t.Errorf("queued payment emails = %d, want still 1", len(dispatcher.payments))
	}
}
