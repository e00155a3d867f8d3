package create_service

import (
	"time"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/internal/service/catalog"
)

// ServiceRequest HTTP request model for creating or replacing an
// offering.
type ServiceRequest struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	DurationMin int     `json:"durationMin"`
	PriceCents  int     `json:"priceCents"`
	IsActive    bool    `json:"isActive"`
	SortOrder   int     `json:"sortOrder"`
}

// ToServiceInput converts the HTTP request into the catalog input.
func (r *ServiceRequest) ToServiceInput() catalog.ServiceInput {
	return catalog.ServiceInput{
		Category:    domain.ServiceCategory(r.Category),
		Name:        r.Name,
		Description: r.Description,
		DurationMin: r.DurationMin,
		PriceCents:  r.PriceCents,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
	}
}

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	DurationMin int     `json:"durationMin"`
	PriceCents  int     `json:"priceCents"`
	IsActive    bool    `json:"isActive"`
	SortOrder   int     `json:"sortOrder"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// FromDomain converts a service into the HTTP response.
func FromDomain(svc *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          svc.ID.String(),
		Category:    string(svc.Category),
		Name:        svc.Name,
		Description: svc.Description,
		DurationMin: svc.DurationMin,
		PriceCents:  svc.PriceCents,
		IsActive:    svc.IsActive,
		SortOrder:   svc.SortOrder,
		CreatedAt:   svc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   svc.UpdatedAt.Format(time.RFC3339),
	}
}
