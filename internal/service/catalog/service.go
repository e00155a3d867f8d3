package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	storage "github.com/nailsbynatalia/booking-service/internal/infra/storage/service"
)

// Service manages the offering catalog: public listing plus admin
// create and update.
type Service struct {
	serviceRepo ServiceRepository
	log         Logger
}

// New creates the catalog service.
func New(serviceRepo ServiceRepository, log Logger) *Service {
	return &Service{serviceRepo: serviceRepo, log: log}
}

// ListActive returns the active offerings in catalog order, optionally
// limited to one category.
func (s *Service) ListActive(ctx context.Context, category *domain.ServiceCategory) ([]*domain.Service, error) {
	if category != nil && !domain.ValidServiceCategory(string(*category)) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *category)
	}

	services, err := s.serviceRepo.ListActive(ctx, category)
	if err != nil {
		s.log.Error("catalog: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: ListActive - query services: %v", ErrInternal, err)
	}
	return services, nil
}

// GetByID loads one offering, active or not.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.log.Error("catalog: failed to load service %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - load service: %v", ErrInternal, err)
	}
	return svc, nil
}

// ServiceInput carries the writable fields of an offering.
type ServiceInput struct {
	Category    domain.ServiceCategory
	Name        string
	Description *string
	DurationMin int
	PriceCents  int
	IsActive    bool
	SortOrder   int
}

// Create adds an offering to the catalog.
func (s *Service) Create(ctx context.Context, in ServiceInput) (*domain.Service, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		Category:    in.Category,
		Name:        in.Name,
		Description: in.Description,
		DurationMin: in.DurationMin,
		PriceCents:  in.PriceCents,
		IsActive:    in.IsActive,
		SortOrder:   in.SortOrder,
	})
	if err != nil {
		s.log.Error("catalog: failed to create service: %v", err)
		return nil, fmt.Errorf("%w: Create - insert service: %v", ErrInternal, err)
	}

	s.log.Info("catalog: created service %s (%s)", created.ID, created.Name)
	return created, nil
}

// Update replaces the writable fields of an offering. Deactivating is
// how offerings retire; bookings keep their service reference.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in ServiceInput) (*domain.Service, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	err := s.serviceRepo.Update(ctx, &domain.Service{
		ID:          id,
		Category:    in.Category,
		Name:        in.Name,
		Description: in.Description,
		DurationMin: in.DurationMin,
		PriceCents:  in.PriceCents,
		IsActive:    in.IsActive,
		SortOrder:   in.SortOrder,
	})
	if err != nil {
		if errors.Is(err, storage.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.log.Error("catalog: failed to update service %s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - update service: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

func validateInput(in ServiceInput) error {
	if !domain.ValidServiceCategory(string(in.Category)) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, in.Category)
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if in.DurationMin <= 0 {
		return fmt.Errorf("%w: duration_min must be positive", ErrInvalidInput)
	}
	if in.PriceCents < 0 {
		return fmt.Errorf("%w: price_cents must not be negative", ErrInvalidInput)
	}
	return nil
}
