package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/G-Mursalin/dent-care-server-site/models"
)

func TestAvailableSlotsRemovesBookedSlots(t *testing.T) {
	svcs := []models.Service{
		{Name: "Cleaning", Slots: []string{"10am", "11am"}},
	}
	bookings := []models.Booking{
		{TreatmentName: "Cleaning", Date: "Jan 1, 2024", Slot: "10am"},
	}

	got := AvailableSlots(svcs, bookings)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"11am"}, got[0].Slots)
	assert.Equal(t, []string{"10am"}, got[0].BookedSlots)
}

func TestAvailableSlotsNoBookings(t *testing.T) {
	svcs := []models.Service{
		{Name: "Whitening", Slots: []string{"9am", "10am", "11am"}},
	}

	got := AvailableSlots(svcs, nil)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"9am", "10am", "11am"}, got[0].Slots)
	assert.Empty(t, got[0].BookedSlots)
}

func TestAvailableSlotsOnlyOwnServiceBookingsCount(t *testing.T) {
	svcs := []models.Service{
		{Name: "Cleaning", Slots: []string{"10am", "11am"}},
		{Name: "Whitening", Slots: []string{"10am", "11am"}},
	}
	bookings := []models.Booking{
		{TreatmentName: "Cleaning", Slot: "10am"},
	}

	got := AvailableSlots(svcs, bookings)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"11am"}, got[0].Slots)
	assert.Equal(t, []string{"10am", "11am"}, got[1].Slots)
	assert.Empty(t, got[1].BookedSlots)
}

func TestAvailableSlotsPreservesOriginalOrder(t *testing.T) {
	svcs := []models.Service{
		{Name: "Root Canal", Slots: []string{"8am", "9am", "10am", "2pm", "3pm"}},
	}
	bookings := []models.Booking{
		{TreatmentName: "Root Canal", Slot: "9am"},
		{TreatmentName: "Root Canal", Slot: "2pm"},
	}

	got := AvailableSlots(svcs, bookings)

	assert.Equal(t, []string{"8am", "10am", "3pm"}, got[0].Slots)
}

func TestAvailableSlotsKeepsDuplicateBookedValues(t *testing.T) {
	svcs := []models.Service{
		{Name: "Cleaning", Slots: []string{"10am", "11am"}},
	}
	bookings := []models.Booking{
		{TreatmentName: "Cleaning", Slot: "10am"},
		{TreatmentName: "Cleaning", Slot: "10am"},
	}

	got := AvailableSlots(svcs, bookings)

	assert.Equal(t, []string{"10am", "10am"}, got[0].BookedSlots)
	assert.Equal(t, []string{"11am"}, got[0].Slots)
}

func TestAvailableSlotsIdempotentAndPure(t *testing.T) {
	svcs := []models.Service{
		{Name: "Cleaning", Slots: []string{"10am", "11am"}},
	}
	bookings := []models.Booking{
		{TreatmentName: "Cleaning", Slot: "10am"},
	}

	first := AvailableSlots(svcs, bookings)
	second := AvailableSlots(svcs, bookings)

	assert.Equal(t, first, second)
	// Inputs stay untouched
	assert.Equal(t, []string{"10am", "11am"}, svcs[0].Slots)
	assert.Nil(t, svcs[0].BookedSlots)
}
