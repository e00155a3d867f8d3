package get_booking

import (
	"time"

	"github.com/nailsbynatalia/booking-service/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string   `json:"id"`
	SlotIDs       []string `json:"slotIds"`
	ServiceID     string   `json:"serviceId"`
	Category      string   `json:"category"`
	Status        string   `json:"status"`
	CustomerName  string   `json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerNotes *string  `json:"customerNotes,omitempty"`
	NumChildren   *int     `json:"numChildren,omitempty"`
	ChildrenAges  *string  `json:"childrenAges,omitempty"`
	Address       *string  `json:"address,omitempty"`
	AdminNotes    *string  `json:"adminNotes,omitempty"`
	DeclineReason *string  `json:"declineReason,omitempty"`
	ConfirmedAt   *string  `json:"confirmedAt,omitempty"`
	DeclinedAt    *string  `json:"declinedAt,omitempty"`
	CancelledAt   *string  `json:"cancelledAt,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// FromDomain converts a booking into the HTTP response.
func FromDomain(b *domain.Booking) *BookingResponse {
	slotIDs := make([]string, 0, len(b.SlotIDs))
	for _, id := range b.SlotIDs {
		slotIDs = append(slotIDs, id.String())
	}

	return &BookingResponse{
		ID:            b.ID.String(),
		SlotIDs:       slotIDs,
		ServiceID:     b.ServiceID.String(),
		Category:      string(b.Category),
		Status:        string(b.Status),
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		CustomerNotes: b.CustomerNotes,
		NumChildren:   b.NumChildren,
		ChildrenAges:  b.ChildrenAges,
		Address:       b.Address,
		AdminNotes:    b.AdminNotes,
		DeclineReason: b.DeclineReason,
		ConfirmedAt:   formatTime(b.ConfirmedAt),
		DeclinedAt:    formatTime(b.DeclinedAt),
		CancelledAt:   formatTime(b.CancelledAt),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
