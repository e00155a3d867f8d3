package claim_slots

import (
	"context"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
)

// SlotRepository locks and transitions slots inside the claim
// transaction.
type SlotRepository interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Slot, error)
	MarkBooked(ctx context.Context, ids []uuid.UUID, bookingID uuid.UUID) (int64, error)
}

// BookingRepository persists the new booking.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ServiceRepository resolves the requested service.
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// TransactionManager runs the claim under serializable isolation.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the minimal logging contract for the usecase.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
