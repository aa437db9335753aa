package booking

import (
	"errors"
	"sync"

	bookingRepo "medibook/database/repository/booking"
	"medibook/models"
)

// fakeBookingRepo is an in-memory BookingRepository that enforces the unique
// (date, treatmentName, email) index the Mongo implementation declares.
type fakeBookingRepo struct {
	mu       sync.Mutex
	byID     map[string]*models.Booking
	byTriple map[[3]string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		byID:     make(map[string]*models.Booking),
		byTriple: make(map[[3]string]*models.Booking),
	}
}

func tripleKey(date, treatment, email string) [3]string {
	return [3]string{date, treatment, email}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := tripleKey(b.Date, b.TreatmentName, b.Email)
	if _, exists := r.byTriple[key]; exists {
		return bookingRepo.ErrDuplicate
	}
	stored := *b
	r.byID[b.ID] = &stored
	r.byTriple[key] = &stored
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.byID[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetByKey(date, treatment, email string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.byTriple[tripleKey(date, treatment, email)]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.byID {
		if b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByEmail(email string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.byID {
		if b.Email == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) MarkPaid(id, transactionID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	b.Paid = true
	b.TransactionID = transactionID
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

// fakeServiceRepo serves a fixed catalogue.
type fakeServiceRepo struct {
	services []models.Service
}

func (r *fakeServiceRepo) GetAll() ([]models.Service, error) {
	return r.services, nil
}

func (r *fakeServiceRepo) GetByName(name string) (*models.Service, error) {
	for _, s := range r.services {
		if s.Name == name {
			copied := s
			return &copied, nil
		}
	}
	return nil, nil
}

// fakePaymentRepo records appended payments, optionally failing every insert.
type fakePaymentRepo struct {
	mu       sync.Mutex
	payments []models.Payment
	fail     bool
}

func (r *fakePaymentRepo) Create(p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("payment store unavailable")
	}
	r.payments = append(r.payments, *p)
	return nil
}

func (r *fakePaymentRepo) GetByBookingID(bookingID string) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Payment
	for _, p := range r.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeDispatcher records queued confirmation emails, optionally failing.
type fakeDispatcher struct {
	mu           sync.Mutex
	appointments []models.Booking
	payments     []models.Payment
	fail         bool
}

func (d *fakeDispatcher) EnqueueAppointmentConfirmation(b models.Booking) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fail {
		return errors.New("queue unavailable")
	}
	d.appointments = append(d.appointments, b)
	return nil
}

func (d *fakeDispatcher) EnqueuePaymentConfirmation(b models.Booking, p models.Payment) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fail {
		return errors.New("queue unavailable")
	}
	d.payments = append(d.payments, p)
	return nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakePaymentRepo, *fakeDispatcher) {
	bookings := newFakeBookingRepo()
	payments := &fakePaymentRepo{}
	dispatcher := &fakeDispatcher{}
	svc := &DefaultBookingService{
		Bookings: bookings,
		Services: &fakeServiceRepo{services: []models.Service{
			{ID: "svc-cleaning", Name: "Cleaning", Slots: []models.Slot{{Time: "9 AM"}, {Time: "10 AM"}}},
			{ID: "svc-whitening", Name: "Whitening", Slots: []models.Slot{{Time: "11 AM"}}},
		}},
		Payments: payments,
		Notifier: dispatcher,
	}
	return svc, bookings, payments, dispatcher
}
