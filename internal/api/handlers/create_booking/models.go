package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	claimSlots "github.com/nailsbynatalia/booking-service/internal/usecase/claim_slots"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotIDs       []string `json:"slotIds"`
	ServiceID     string   `json:"serviceId"`
	Category      string   `json:"category"`
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerPhone string   `json:"customerPhone"`
	Notes         *string  `json:"notes,omitempty"`
	NumChildren   *int     `json:"numChildren,omitempty"`
	ChildrenAges  *string  `json:"childrenAges,omitempty"`
	Address       *string  `json:"address,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the claim request,
// parsing uuids up front.
func (r *CreateBookingRequest) ToUseCaseRequest() (claimSlots.ClaimRequest, error) {
	slotIDs := make([]uuid.UUID, 0, len(r.SlotIDs))
	for _, raw := range r.SlotIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return claimSlots.ClaimRequest{}, err
		}
		slotIDs = append(slotIDs, id)
	}

	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return claimSlots.ClaimRequest{}, err
	}

	return claimSlots.ClaimRequest{
		SlotIDs:       slotIDs,
		ServiceID:     serviceID,
		Category:      domain.ServiceCategory(r.Category),
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
		NumChildren:   r.NumChildren,
		ChildrenAges:  r.ChildrenAges,
		Address:       r.Address,
	}, nil
}

// FromUseCaseResult converts the claim result into the HTTP response.
func FromUseCaseResult(result *claimSlots.ClaimResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID: result.BookingID.String(),
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt.Format(time.RFC3339),
	}
}
