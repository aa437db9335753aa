package booking

import (
	"context"

	bookingRepo "medibook/database/repository/booking"
	paymentRepo "medibook/database/repository/payment"
	serviceRepo "medibook/database/repository/service"
	"medibook/models"
	"medibook/services/notification"
)

// SubmitResult is the caller-visible outcome of a booking submission. A
// duplicate is not an error: Success is false and ExistsData carries the
// record that already claims the (date, treatment, email) triple.
type SubmitResult struct {
	Success    bool            `json:"success"`
	Booking    *models.Booking `json:"result,omitempty"`
	ExistsData *models.Booking `json:"existsData,omitempty"`
}

// ConfirmResult carries the outcomes of the two independent
// payment-confirmation writes.
type ConfirmResult struct {
	Booking *models.Booking `json:"booking"`
	Payment *models.Payment `json:"payment,omitempty"`
}

// BookingService admits bookings, confirms their payments, and serves the
// availability view.
type BookingService interface {
	GetAvailability(date string) ([]models.ServiceAvailability, error)
	SubmitBooking(ctx context.Context, booking *models.Booking) (*SubmitResult, error)
	ConfirmPayment(ctx context.Context, bookingID string, info models.PaymentInfo) (*ConfirmResult, error)
	GetBookingByID(id string) (*models.Booking, error)
	GetBookingsByEmail(email string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Services serviceRepo.ServiceRepository
	Payments paymentRepo.PaymentRepository
	Notifier notification.Dispatcher
}
