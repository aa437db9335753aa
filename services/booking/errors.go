package booking

import "errors"

var (
	// ErrInvalidBooking reports a submission missing one of the fields that
	// make up the booking identity (date, treatment, email, slot).
	ErrInvalidBooking = errors.New("booking is missing required fields")

	// ErrUnknownTreatment reports a treatment name that matches no service.
	ErrUnknownTreatment = errors.New("no service matches the requested treatment")

	// ErrBookingNotFound reports a booking id that matches no record.
	ErrBookingNotFound = errors.New("booking not found")
)
