package domain

import (
	"time"

	"github.com/google/uuid"
)

// ServiceCategory separates the two offerings of the business.
type ServiceCategory string

const (
	CategoryNails       ServiceCategory = "nails"
	CategoryBabysitting ServiceCategory = "babysitting"
)

// ValidServiceCategory reports whether c is a known category value.
func ValidServiceCategory(c string) bool {
	switch ServiceCategory(c) {
	case CategoryNails, CategoryBabysitting:
		return true
	}
	return false
}

// Service is a bookable offering. Read-mostly; referenced by bookings
// but never mutated by the booking process itself.
type Service struct {
	ID          uuid.UUID
	Category    ServiceCategory
	Name        string
	Description *string
	DurationMin int
	PriceCents  int
	IsActive    bool
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
