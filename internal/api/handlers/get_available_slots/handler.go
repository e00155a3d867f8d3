package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/nailsbynatalia/booking-service/internal/api/handlers"
	"github.com/nailsbynatalia/booking-service/internal/service/availability"
	"github.com/nailsbynatalia/booking-service/pkg/types"
)

const (
	msgMissingDate = "date query parameter is required"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
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

// Handle GET /api/v1/availability/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := types.NewDateStringFromString(raw)
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid date: %q", raw)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots, err := h.service.AvailableSlots(r.Context(), date)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /availability/slots - Failed to list slots for %s: %v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSlots(date.String(), slots))
}
