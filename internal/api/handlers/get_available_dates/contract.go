package get_available_dates

import (
	"context"

	"github.com/nailsbynatalia/booking-service/pkg/types"
)

type AvailabilityService interface {
	AvailableDates(ctx context.Context, from types.DateString, weeks int) ([]types.DateString, error)
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
