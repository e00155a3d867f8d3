package delete_slot

import (
	"context"

	"github.com/google/uuid"
)

type AvailabilityService interface {
	DeleteSlot(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
