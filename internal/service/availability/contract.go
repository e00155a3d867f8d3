package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/pkg/types"
)

// SlotRepository is the storage surface for slot reads and admin edits.
type SlotRepository interface {
	GetAvailableByDate(ctx context.Context, date types.DateString) ([]*domain.Slot, error)
	GetDistinctAvailableDates(ctx context.Context, from, to types.DateString) ([]types.DateString, error)
	Insert(ctx context.Context, slots []*domain.Slot) ([]*domain.Slot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RuleRepository is the storage surface for the weekly pattern.
type RuleRepository interface {
	GetActive(ctx context.Context) ([]*domain.AvailabilityRule, error)
	DeactivateAll(ctx context.Context) error
	InsertBatch(ctx context.Context, rules []*domain.AvailabilityRule) ([]*domain.AvailabilityRule, error)
}

// TransactionManager couples deactivation and insert of a rule set.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time; injected for testability.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the minimal logging contract for the service.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
