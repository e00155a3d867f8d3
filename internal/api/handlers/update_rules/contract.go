package update_rules

import (
	"context"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/internal/service/availability"
)

type AvailabilityService interface {
	SaveWeeklyRules(ctx context.Context, inputs []availability.RuleInput) ([]*domain.AvailabilityRule, error)
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
