package models

import "time"

// Payment is an append-only record of a completed charge. It is correlated
// to its booking only by the copied transaction id, not a stored reference.
type Payment struct {
	ID            string    `json:"id" db:"id"`
	TransactionID string    `json:"transaction_id" db:"transaction_id"`
	Amount        int64     `json:"amount" db:"amount"`
	PatientEmail  string    `json:"patient_email" db:"patient_email"`
	CardBrand     *string   `json:"card_brand,omitempty" db:"card_brand"`
	CardLast4     *string   `json:"card_last4,omitempty" db:"card_last4"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}
