package get_available_slots

import (
	"github.com/nailsbynatalia/booking-service/internal/domain"
)

// SlotResponse HTTP response model for one open slot.
type SlotResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromSlots converts domain slots into the HTTP response.
func FromSlots(date string, slots []*domain.Slot) *SlotsResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			ID:        s.ID.String(),
			Date:      s.Date.String(),
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}
	return &SlotsResponse{Date: date, Slots: out}
}
