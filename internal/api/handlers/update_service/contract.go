package update_service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/internal/service/catalog"
)

type CatalogService interface {
	Update(ctx context.Context, id uuid.UUID, in catalog.ServiceInput) (*domain.Service, error)
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
