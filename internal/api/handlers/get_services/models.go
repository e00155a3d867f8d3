package get_services

import (
	"github.com/nailsbynatalia/booking-service/internal/domain"
)

// ServiceResponse HTTP response model for one offering.
type ServiceResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	DurationMin int     `json:"durationMin"`
	PriceCents  int     `json:"priceCents"`
	SortOrder   int     `json:"sortOrder"`
}

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromServices converts domain services into the HTTP response.
func FromServices(services []*domain.Service) *ServicesResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, ServiceResponse{
			ID:          svc.ID.String(),
			Category:    string(svc.Category),
			Name:        svc.Name,
			Description: svc.Description,
			DurationMin: svc.DurationMin,
			PriceCents:  svc.PriceCents,
			SortOrder:   svc.SortOrder,
		})
	}
	return &ServicesResponse{Services: out}
}
