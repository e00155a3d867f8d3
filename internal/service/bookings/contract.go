package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
)

// BookingRepository is the storage surface the lifecycle manager needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus, declineReason *string) error
	UpdateAdminNotes(ctx context.Context, id uuid.UUID, notes string) error
}

// SlotRepository frees slots when a booking is declined or cancelled.
type SlotRepository interface {
	Release(ctx context.Context, ids []uuid.UUID) error
}

// TransactionManager couples the status write and the slot release.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the minimal logging contract for the service.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
