package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/pkg/types"
)

// AvailabilityRule is a recurring weekly availability template. The
// generator materializes concrete slots from the active rule set; rules
// are deactivated rather than deleted when the admin saves a new
// pattern, so generated slots keep a valid originating-rule reference.
type AvailabilityRule struct {
	ID             uuid.UUID
	DayOfWeek      int // 0 = Sunday .. 6 = Saturday
	StartTime      types.TimeString
	EndTime        types.TimeString
	SlotDuration   int // minutes
	IsActive       bool
	EffectiveFrom  *types.DateString
	EffectiveUntil *types.DateString
	CreatedAt      time.Time
}

// AppliesTo reports whether the rule governs the given date: matching
// day of week and, if set, an effective range covering the date.
func (r *AvailabilityRule) AppliesTo(date types.DateString) bool {
	weekday, err := date.Weekday()
	if err != nil {
		return false
	}
	if int(weekday) != r.DayOfWeek {
		return false
	}
	if r.EffectiveFrom != nil && string(date) < string(*r.EffectiveFrom) {
		return false
	}
	if r.EffectiveUntil != nil && string(date) > string(*r.EffectiveUntil) {
		return false
	}
	return true
}
