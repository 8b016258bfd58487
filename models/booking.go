package models

import "time"

type Booking struct {
	ID            string    `json:"id" db:"id"`
	TreatmentName string    `json:"treatment_name" db:"treatment_name"`
	Date          string    `json:"appointment_date" db:"appointment_date"`
	Slot          string    `json:"slot" db:"slot"`
	PatientName   string    `json:"patient_name" db:"patient_name"`
	PatientEmail  string    `json:"patient_email" db:"patient_email"`
	Phone         *string   `json:"phone,omitempty" db:"phone"`
	Paid          bool      `json:"paid" db:"paid"`
	TransactionID *string   `json:"transaction_id,omitempty" db:"transaction_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

type CreateBookingRequest struct {
	TreatmentName string  `json:"treatment_name" binding:"required"`
	Date          string  `json:"appointment_date" binding:"required"`
	Slot          string  `json:"slot" binding:"required"`
	PatientName   string  `json:"patient_name" binding:"required"`
	PatientEmail  string  `json:"patient_email" binding:"required,email"`
	Phone         *string `json:"phone,omitempty"`
}

// PayBookingRequest carries the processor's transaction reference plus the
// card metadata logged onto the payment record.
type PayBookingRequest struct {
	TransactionID string  `json:"transaction_id" binding:"required"`
	Amount        int64   `json:"amount"`
	CardBrand     *string `json:"card_brand,omitempty"`
	CardLast4     *string `json:"card_last4,omitempty"`
}
