package get_rules

import (
	"context"

	"github.com/nailsbynatalia/booking-service/internal/domain"
)

type AvailabilityService interface {
	GetRules(ctx context.Context) ([]*domain.AvailabilityRule, error)
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
