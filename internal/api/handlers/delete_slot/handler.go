package delete_slot

import (
	"errors"
	"net/http"

	"github.com/nailsbynatalia/booking-service/internal/api/handlers"
	"github.com/nailsbynatalia/booking-service/internal/service/availability"
)

const (
	msgInvalidID    = "slot id must be a valid uuid"
	msgSlotNotFound = "slot not found"
	msgSlotBooked   = "slot is booked and cannot be deleted"
)

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

// Handle DELETE /api/v1/admin/availability/slots/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseUUIDVar(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /admin/availability/slots/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteSlot(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, availability.ErrSlotNotFound):
			h.logger.Warn("DELETE /admin/availability/slots/{id} - Not found: slot_id=%s", id)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, availability.ErrSlotBooked):
			h.logger.Warn("DELETE /admin/availability/slots/{id} - Slot booked: slot_id=%s", id)
			handlers.RespondError(w, http.StatusConflict, msgSlotBooked)

		default:
			h.logger.Error("DELETE /admin/availability/slots/{id} - Failed to delete: slot_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/availability/slots/{id} - Slot deleted: slot_id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}
