package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusDeclined  BookingStatus = "declined"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// statusTransitions is the directed edge set of the booking state
// machine. Declined, cancelled and completed are terminal.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusDeclined, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// ValidBookingStatus reports whether s is a known status value.
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusDeclined, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Booking is a customer's reservation spanning one or more contiguous
// slots on a single date. Bookings are never hard-deleted; history is
// kept through status and the transition timestamps.
type Booking struct {
	ID        uuid.UUID
	SlotIDs   []uuid.UUID
	ServiceID uuid.UUID
	Category  ServiceCategory
	Status    BookingStatus

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	CustomerNotes *string

	// Babysitting-specific fields
	NumChildren  *int
	ChildrenAges *string
	Address      *string

	AdminNotes    *string
	DeclineReason *string

	ConfirmedAt *time.Time
	DeclinedAt  *time.Time
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if no further status transition is allowed.
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case StatusDeclined, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving to next is a valid edge of the
// state machine.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range statusTransitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ReleasesSlots reports whether entering status must free the booking's
// slots back to availability. Completion keeps them booked: the
// appointment happened.
func ReleasesSlots(status BookingStatus) bool {
	return status == StatusDeclined || status == StatusCancelled
}

// BookingsFilter narrows admin booking listings.
type BookingsFilter struct {
	Status   *BookingStatus
	Category *ServiceCategory
	Limit    int
	Offset   int
}
