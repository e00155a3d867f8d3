package list_bookings

import (
	"context"

	"github.com/nailsbynatalia/booking-service/internal/domain"
)

type BookingsService interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error)
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
