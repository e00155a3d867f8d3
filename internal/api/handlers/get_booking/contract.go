package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
)

type BookingsService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
