package get_rules

import (
	"net/http"

	"github.com/nailsbynatalia/booking-service/internal/api/handlers"
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

// Handle GET /api/v1/admin/availability/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rules, err := h.service.GetRules(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/availability/rules - Failed to load rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromRules(rules))
}
