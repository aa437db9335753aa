package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "medibook/database/repository/booking"
	"medibook/models"
	"medibook/services/availability"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetAvailability returns every service with the slots still open on date.
func (s *DefaultBookingService) GetAvailability(date string) ([]models.ServiceAvailability, error) {
	services, err := s.Services.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load service catalogue: %w", err)
	}
	bookings, err := s.Bookings.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}
	return availability.Compute(date, services, bookings), nil
}

// SubmitBooking admits a booking request. A booking already claiming the
// (date, treatment, email) triple makes the submission fail softly: the
// result carries the conflicting record and nothing is written. On success
// the booking is persisted and an appointment-confirmation email is queued
// best effort.
func (s *DefaultBookingService) SubmitBooking(ctx context.Context, b *models.Booking) (*SubmitResult, error) {
	logger := utils.GetLogger()

	if b.Date == "" || b.TreatmentName == "" || b.Email == "" || b.Slot == "" {
		return nil, ErrInvalidBooking
	}

	svc, err := s.Services.GetByName(b.TreatmentName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve treatment %q: %w", b.TreatmentName, err)
	}
	if svc == nil {
		return nil, ErrUnknownTreatment
	}

	existing, err := s.Bookings.GetByKey(b.Date, b.TreatmentName, b.Email)
	if err != nil {
		return nil, fmt.Errorf("conflict check failed: %w", err)
	}
	if existing != nil {
		return &SubmitResult{Success: false, ExistsData: existing}, nil
	}

	b.ID = uuid.New().String()
	b.ServiceID = svc.ID
	b.Paid = false

	if err := s.Bookings.Create(b); err != nil {
		// A concurrent submission can slip past the existence check; the
		// unique index decides the winner and the loser lands here.
		if errors.Is(err, bookingRepo.ErrDuplicate) {
			winner, ferr := s.Bookings.GetByKey(b.Date, b.TreatmentName, b.Email)
			if ferr != nil || winner == nil {
				return nil, fmt.Errorf("conflict re-fetch failed: %w", ferr)
			}
			return &SubmitResult{Success: false, ExistsData: winner}, nil
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if err := s.Notifier.EnqueueAppointmentConfirmation(*b); err != nil {
		logger.Error("failed to queue appointment confirmation email",
			zap.String("bookingID", b.ID), zap.Error(err))
	}

	return &SubmitResult{Success: true, Booking: b}, nil
}

// GetBookingByID fetches one booking. Missing bookings surface as
// ErrBookingNotFound.
func (s *DefaultBookingService) GetBookingByID(id string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// GetBookingsByEmail lists a patient's bookings.
func (s *DefaultBookingService) GetBookingsByEmail(email string) ([]models.Booking, error) {
	return s.Bookings.GetByEmail(email)
}
