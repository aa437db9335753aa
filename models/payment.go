package models

import "time"

// Payment is an append-only record of a confirmed payment. It duplicates the
// identifying fields of its booking so the ledger stays readable on its own.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"booking_id" json:"bookingId"`
	Amount        float64   `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	Email         string    `bson:"email" json:"email"`
	TreatmentName string    `bson:"treatmentName" json:"treatmentName"`
	Date          string    `bson:"date" json:"date"`
	Slot          string    `bson:"slot" json:"slot"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// PaymentInfo is the payload of a payment-confirmation request.
type PaymentInfo struct {
	TransactionID string  `json:"transactionId" binding:"required"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}
