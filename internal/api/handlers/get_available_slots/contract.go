package get_available_slots

import (
	"context"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/pkg/types"
)

type AvailabilityService interface {
	AvailableSlots(ctx context.Context, date types.DateString) ([]*domain.Slot, error)
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
