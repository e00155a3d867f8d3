package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/pkg/types"
)

// SlotStatus represents the lifecycle state of a calendar slot.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotBlocked   SlotStatus = "blocked"
)

// Slot is an atomic bookable time unit on a specific date.
// (date, start_time) is unique; a booked slot always carries the id of
// the booking that owns it.
type Slot struct {
	ID        uuid.UUID
	Date      types.DateString
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    SlotStatus
	RuleID    *uuid.UUID
	BookingID *uuid.UUID
	CreatedAt time.Time
}

// IsAvailable returns true if the slot can still be claimed.
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// SlotsAreContiguous reports whether slots, already ordered by start
// time, form a gapless chain on a single date: every slot's end time
// equals the next slot's start time.
func SlotsAreContiguous(slots []*Slot) bool {
	if len(slots) == 0 {
		return false
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Date != slots[0].Date {
			return false
		}
		if slots[i-1].EndTime != slots[i].StartTime {
			return false
		}
	}
	return true
}
