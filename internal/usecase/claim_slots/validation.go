package claim_slots

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
)

// validateRequest checks the claim request before any storage work.
// All missing required fields are collected so the caller gets one
// complete error instead of a field-by-field ping-pong.
func validateRequest(req ClaimRequest) error {
	var missing []string

	if len(req.SlotIDs) == 0 {
		missing = append(missing, "slot_ids")
	}
	for _, id := range req.SlotIDs {
		if id == uuid.Nil {
			return fmt.Errorf("%w: slot_ids contains an empty id", ErrValidation)
		}
	}
	if req.ServiceID == uuid.Nil {
		missing = append(missing, "service_id")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		missing = append(missing, "customer_email")
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		missing = append(missing, "customer_phone")
	}

	if !domain.ValidServiceCategory(string(req.Category)) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, req.Category)
	}

	if req.Category == domain.CategoryBabysitting {
		if req.NumChildren == nil || *req.NumChildren < 1 {
			missing = append(missing, "num_children")
		}
		if req.Address == nil || strings.TrimSpace(*req.Address) == "" {
			missing = append(missing, "address")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}

	if !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: customer_email is not a valid email address", ErrValidation)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceeds %d characters", ErrValidation, domain.MaxNotesLength)
	}

	if hasDuplicateIDs(req.SlotIDs) {
		return fmt.Errorf("%w: slot_ids contains duplicates", ErrValidation)
	}

	return nil
}

func hasDuplicateIDs(ids []uuid.UUID) bool {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
