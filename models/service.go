package models

// Slot is one schedulable time label within a service's daily template,
// e.g. "10:00 AM". Slots carry no date; bookings bind them to one.
type Slot struct {
	Time string `bson:"time" json:"time"`
}

// Service represents a treatment type offered by the clinic, with a fixed
// template of time slots per day. Reference data, seeded externally.
type Service struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"` // unique; bookings also reference it by name
	Slots []Slot `bson:"slots" json:"slots"`
}

// ServiceAvailability is a service augmented with the slots still open on a
// given date.
type ServiceAvailability struct {
	Service   `bson:",inline"`
	Available []Slot `bson:"available" json:"available"`
}
