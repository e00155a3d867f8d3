package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a recorded intent to notify a customer. Actual
// delivery is best-effort and external; the row is the durable log.
// (booking_id, type) is unique, which makes the reminder scan
// idempotent across repeated cron runs.
type Notification struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Type      string
	Channel   string
	Recipient string
	SentAt    *time.Time
	Error     *string
	CreatedAt time.Time
}

// IsSent returns true once delivery succeeded.
func (n *Notification) IsSent() bool {
	return n.SentAt != nil
}
