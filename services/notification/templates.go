package notification

import (
	"fmt"

	"medibook/models"
)

// AppointmentEmail renders the appointment confirmation message.
func AppointmentEmail(p models.AppointmentEmailPayload) models.EmailMessage {
	return models.EmailMessage{
		To:      p.Email,
		Subject: fmt.Sprintf("Your appointment for %s on %s is confirmed", p.TreatmentName, p.Date),
		Body: fmt.Sprintf(
			"Hello %s,\n\nYour appointment for %s is booked on %s at %s.\n\nPlease arrive a few minutes early.\n\nMediBook",
			p.PatientName, p.TreatmentName, p.Date, p.Slot,
		),
	}
}

// PaymentEmail renders the payment confirmation message.
func PaymentEmail(p models.PaymentEmailPayload) models.EmailMessage {
	return models.EmailMessage{
		To:      p.Email,
		Subject: fmt.Sprintf("Payment received for %s on %s", p.TreatmentName, p.Date),
		Body: fmt.Sprintf(
			"Hello %s,\n\nWe received your payment of %.2f %s for %s on %s at %s.\nTransaction id: %s.\n\nMediBook",
			p.PatientName, p.Amount, p.Currency, p.TreatmentName, p.Date, p.Slot, p.TransactionID,
		),
	}
}
