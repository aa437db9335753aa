package models

import "time"

// Booking is a patient's claim on one service slot for one date.
// At most one booking may exist per (date, treatmentName, email) triple;
// the booking repository enforces this with a unique compound index.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	ServiceID     string    `bson:"service_id" json:"serviceId"`        // stable reference, resolved at admission
	TreatmentName string    `bson:"treatmentName" json:"treatmentName"` // service name at booking time
	Date          string    `bson:"date" json:"date"`                   // opaque display date, e.g. "Jul 6, 2022"
	Slot          string    `bson:"slot" json:"slot"`
	PatientName   string    `bson:"patientName" json:"patientName"`
	Email         string    `bson:"email" json:"email"`
	DoctorName    string    `bson:"doctorName,omitempty" json:"doctorName,omitempty"`
	Paid          bool      `bson:"paid" json:"paid"`
	TransactionID string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
