package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nailsbynatalia/booking-service/internal/api/handlers"
	"github.com/nailsbynatalia/booking-service/internal/service/availability"
	"github.com/nailsbynatalia/booking-service/pkg/types"
)

const (
	msgInvalidWeeks = "weeks must be an integer"
	msgInvalidFrom  = "from must be a valid date in YYYY-MM-DD format"
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

// DatesResponse HTTP response model
type DatesResponse struct {
	Dates []string `json:"dates"`
}

// Handle GET /api/v1/availability/dates?from=YYYY-MM-DD&weeks=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	weeks := 0
	if raw := r.URL.Query().Get("weeks"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /availability/dates - Invalid weeks param: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidWeeks)
			return
		}
		weeks = parsed
	}
	from := types.DateString(r.URL.Query().Get("from"))

	dates, err := h.service.AvailableDates(r.Context(), from, weeks)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("GET /availability/dates - Invalid from param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		h.logger.Error("GET /availability/dates - Failed to list dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(dates))
}

func toResponse(dates []types.DateString) *DatesResponse {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.String())
	}
	return &DatesResponse{Dates: out}
}
