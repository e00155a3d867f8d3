package scan_reminders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/pkg/types"
)

// SlotRepository finds which bookings hold slots on the target date.
type SlotRepository interface {
	GetBookedBookingIDs(ctx context.Context, date types.DateString) ([]uuid.UUID, error)
}

// BookingRepository loads the bookings eligible for a reminder.
type BookingRepository interface {
	GetByIDsWithStatus(ctx context.Context, ids []uuid.UUID, status domain.BookingStatus) ([]*domain.Booking, error)
}

// NotificationRepository records reminder attempts idempotently.
type NotificationRepository interface {
	CreateIgnoreDuplicates(ctx context.Context, records []*domain.Notification) (int64, error)
	GetUnsentByBookingIDs(ctx context.Context, bookingIDs []uuid.UUID, notificationType string) ([]*domain.Notification, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, deliveryErr string) error
}

// Notifier delivers a reminder out of process. Implementations degrade
// gracefully; a delivery failure never fails the scan.
type Notifier interface {
	SendReminder(ctx context.Context, recipient string, booking *domain.Booking) error
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
