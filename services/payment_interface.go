package services

// PaymentClient is an interface for one-time charge processors.
type PaymentClient interface {
	// CreatePaymentIntent opens a charge intent for the given amount in
	// minor units and returns the client-usable secret.
	CreatePaymentIntent(amount int64, currency string) (string, error)
}
