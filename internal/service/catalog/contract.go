package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
)

// ServiceRepository is the storage surface for the offering catalog.
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	ListActive(ctx context.Context, category *domain.ServiceCategory) ([]*domain.Service, error)
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
}

// Logger is the minimal logging contract for the service.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
