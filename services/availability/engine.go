// Package availability computes which slots of which services remain open on
// a given date. It is a pure view over snapshots the caller already fetched;
// it performs no I/O and never mutates its inputs.
package availability

import "medibook/models"

// DateFormat is the opaque display format bookings carry, e.g. "Jul 6, 2022".
// The engine itself never parses dates; they are matching keys only.
const DateFormat = "Jan 2, 2006"

// Compute returns every service augmented with the subset of its slot
// template not yet claimed by a booking on the given date. Bookings are
// matched to services by treatment name, exact and case-sensitive; slots keep
// template order. The date parameter only scopes the booking snapshot the
// caller passes in; bookings for other dates must not be included.
func Compute(date string, services []models.Service, bookings []models.Booking) []models.ServiceAvailability {
	out := make([]models.ServiceAvailability, 0, len(services))
	for _, svc := range services {
		booked := claimedSlots(svc.Name, date, bookings)

		available := make([]models.Slot, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if !booked[slot.Time] {
				available = append(available, slot)
			}
		}
		out = append(out, models.ServiceAvailability{Service: svc, Available: available})
	}
	return out
}

// claimedSlots collects the slot times claimed for one treatment on the date.
func claimedSlots(treatmentName, date string, bookings []models.Booking) map[string]bool {
	claimed := make(map[string]bool)
	for _, b := range bookings {
		if b.TreatmentName == treatmentName && b.Date == date {
			claimed[b.Slot] = true
		}
	}
	return claimed
}
