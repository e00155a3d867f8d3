package generate_slots

import (
	"context"
	"time"

	"github.com/nailsbynatalia/booking-service/internal/domain"
)

// RuleRepository provides the active weekly pattern.
type RuleRepository interface {
	GetActive(ctx context.Context) ([]*domain.AvailabilityRule, error)
}

// SlotRepository persists generated slots, skipping duplicates.
type SlotRepository interface {
	InsertIgnoreDuplicates(ctx context.Context, slots []*domain.Slot) (int64, error)
}

// TimeProvider supplies the current time; injected for testability.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the minimal logging contract for the usecase.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
