package services

import "github.com/G-Mursalin/dent-care-server-site/models"

// AvailableSlots computes the remaining open slots per service for a single
// date. bookings must already be filtered to that date. For each service,
// BookedSlots collects the slot values of its own bookings in read order
// (duplicates kept as found) and Slots keeps the service's original slot
// order minus every booked value.
//
// Pure function: the inputs are not mutated.
func AvailableSlots(services []models.Service, bookings []models.Booking) []models.Service {
	result := make([]models.Service, len(services))

	for i, service := range services {
		booked := []string{}
		for _, b := range bookings {
			if b.TreatmentName == service.Name {
				booked = append(booked, b.Slot)
			}
		}

		bookedSet := make(map[string]bool, len(booked))
		for _, slot := range booked {
			bookedSet[slot] = true
		}

		open := []string{}
		for _, slot := range service.Slots {
			if !bookedSet[slot] {
				open = append(open, slot)
			}
		}

		service.Slots = open
		service.BookedSlots = booked
		result[i] = service
	}

	return result
}
