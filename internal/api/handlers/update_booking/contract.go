package update_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
)

type BookingsService interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, next domain.BookingStatus, declineReason *string) (*domain.Booking, error)
	SetAdminNotes(ctx context.Context, id uuid.UUID, notes string) (*domain.Booking, error)
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
