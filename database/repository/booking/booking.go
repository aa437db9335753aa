package bookingRepo

import (
	"errors"

	"medibook/models"
)

// ErrDuplicate reports that an insert collided with the unique
// (date, treatmentName, email) index.
var ErrDuplicate = errors.New("booking already exists for this date, treatment and email")

// BookingRepository persists bookings. At most one booking may exist per
// (date, treatmentName, email) triple; Create returns ErrDuplicate when the
// unique index rejects a second one.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByKey(date, treatmentName, email string) (*models.Booking, error)
	GetByDate(date string) ([]models.Booking, error)
	GetByEmail(email string) ([]models.Booking, error)
	MarkPaid(id, transactionID string) (*models.Booking, error)
}
