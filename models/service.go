package models

// Service is a treatment the clinic offers. Slots holds the full day's
// offered slot labels; it is only ever mutated out-of-band, never through
// an endpoint.
type Service struct {
	ID    int      `json:"id" db:"id"`
	Name  string   `json:"name" db:"name"`
	Price float64  `json:"price" db:"price"`
	Slots []string `json:"slots" db:"slots"`

	// BookedSlots is filled by the availability calculator, not stored.
	BookedSlots []string `json:"booked_slots,omitempty"`
}

// ServiceName is the projected form returned by GET /services.
type ServiceName struct {
	Name string `json:"name" db:"name"`
}
