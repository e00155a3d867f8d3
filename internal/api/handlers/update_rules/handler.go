package update_rules

import (
	"errors"
	"net/http"

	"github.com/nailsbynatalia/booking-service/internal/api/handlers"
	getRules "github.com/nailsbynatalia/booking-service/internal/api/handlers/get_rules"
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

// RuleInput HTTP model for one weekly rule.
type RuleInput struct {
	DayOfWeek      int     `json:"dayOfWeek"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	SlotDuration   int     `json:"slotDuration"`
	EffectiveFrom  *string `json:"effectiveFrom,omitempty"`
	EffectiveUntil *string `json:"effectiveUntil,omitempty"`
}

// UpdateRulesRequest HTTP request model. The set replaces the active
// pattern wholesale; an empty set turns all availability off.
type UpdateRulesRequest struct {
	Rules []RuleInput `json:"rules"`
}

// Handle PUT /api/v1/admin/availability/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability/rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	inputs := make([]availability.RuleInput, 0, len(req.Rules))
	for _, in := range req.Rules {
		input := availability.RuleInput{
			DayOfWeek:    in.DayOfWeek,
			StartTime:    types.TimeString(in.StartTime),
			EndTime:      types.TimeString(in.EndTime),
			SlotDuration: in.SlotDuration,
		}
		if in.EffectiveFrom != nil {
			d := types.DateString(*in.EffectiveFrom)
			input.EffectiveFrom = &d
		}
		if in.EffectiveUntil != nil {
			d := types.DateString(*in.EffectiveUntil)
			input.EffectiveUntil = &d
		}
		inputs = append(inputs, input)
	}

	saved, err := h.service.SaveWeeklyRules(r.Context(), inputs)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("PUT /admin/availability/rules - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("PUT /admin/availability/rules - Failed to save: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/availability/rules - Saved %d rule(s)", len(saved))
	handlers.RespondJSON(w, http.StatusOK, getRules.FromRules(saved))
}
