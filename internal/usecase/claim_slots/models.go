package claim_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
)

// ClaimRequest carries everything needed to atomically claim a set of
// contiguous slots and create the booking behind them.
type ClaimRequest struct {
	SlotIDs       []uuid.UUID
	ServiceID     uuid.UUID
	Category      domain.ServiceCategory
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         *string
	NumChildren   *int
	ChildrenAges  *string
	Address       *string
}

// ClaimResult describes the created booking.
type ClaimResult struct {
	BookingID uuid.UUID
	Status    domain.BookingStatus
	CreatedAt time.Time
}
