package generate_slots

import (
	"context"

	generateSlots "github.com/nailsbynatalia/booking-service/internal/usecase/generate_slots"
)

type GenerateSlotsUseCase interface {
	Execute(ctx context.Context, daysAhead int) (*generateSlots.GenerateResult, error)
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
