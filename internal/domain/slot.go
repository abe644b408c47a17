package domain

import "time"

// SlotState represents the availability state of a slot
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotBooked    SlotState = "booked"
)

// Slot is a named time range on a specific court and date.
// A booked slot references exactly one active booking.
type Slot struct {
	ID      int64
	CourtID int64
	Date    time.Time
	Range   TimeRange
	Label   string
	State   SlotState

	// BookingID is set only while State == SlotBooked
	BookingID *int64
}

// IsBooked returns true if the slot currently holds an active booking
func (s *Slot) IsBooked() bool {
	return s.State == SlotBooked
}

// SlotSeed is a proposed slot (range + label) before it is persisted
// as part of a grid. IDs are assigned by the storage layer.
type SlotSeed struct {
	Range TimeRange
	Label string
}
