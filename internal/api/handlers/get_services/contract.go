package get_services

import (
	"context"

	"github.com/nailsbynatalia/booking-service/internal/domain"
)

type CatalogService interface {
	ListActive(ctx context.Context, category *domain.ServiceCategory) ([]*domain.Service, error)
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
