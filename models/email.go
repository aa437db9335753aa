package models

// EmailMessage is a templated outbound email handed to the mailer.
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// AppointmentEmailPayload is the queued payload for an appointment
// confirmation email.
type AppointmentEmailPayload struct {
	BookingID     string `json:"bookingId"`
	Email         string `json:"email"`
	PatientName   string `json:"patientName"`
	TreatmentName string `json:"treatmentName"`
	Date          string `json:"date"`
	Slot          string `json:"slot"`
}

// PaymentEmailPayload is the queued payload for a payment confirmation email.
type PaymentEmailPayload struct {
	BookingID     string  `json:"bookingId"`
	Email         string  `json:"email"`
	PatientName   string  `json:"patientName"`
	TreatmentName string  `json:"treatmentName"`
	Date          string  `json:"date"`
	Slot          string  `json:"slot"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	TransactionID string  `json:"transactionId"`
}
