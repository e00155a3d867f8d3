package create_slots

import (
	"errors"
	"net/http"

	"github.com/nailsbynatalia/booking-service/internal/api/handlers"
	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/internal/service/availability"
	"github.com/nailsbynatalia/booking-service/pkg/types"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// SlotInput HTTP model for one slot to create.
type SlotInput struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// CreateSlotsRequest HTTP request model
type CreateSlotsRequest struct {
	Slots []SlotInput `json:"slots"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// CreateSlotsResponse HTTP response model
type CreateSlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Handle POST /api/v1/admin/availability/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/availability/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	inputs := make([]availability.SlotInput, 0, len(req.Slots))
	for _, in := range req.Slots {
		inputs = append(inputs, availability.SlotInput{
			Date:      types.DateString(in.Date),
			StartTime: types.TimeString(in.StartTime),
			EndTime:   types.TimeString(in.EndTime),
		})
	}

	created, err := h.service.CreateSlots(r.Context(), inputs)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("POST /admin/availability/slots - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /admin/availability/slots - Failed to create: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/availability/slots - Created %d slot(s)", len(created))
	handlers.RespondJSON(w, http.StatusCreated, toResponse(created))
}

func toResponse(slots []*domain.Slot) *CreateSlotsResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			ID:        s.ID.String(),
			Date:      s.Date.String(),
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Status:    string(s.Status),
		})
	}
	return &CreateSlotsResponse{Slots: out}
}
