package generate_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nailsbynatalia/booking-service/internal/api/handlers"
	generateSlots "github.com/nailsbynatalia/booking-service/internal/usecase/generate_slots"
)

const msgInvalidDaysAhead = "daysAhead must be an integer"

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	SlotsCreated int64  `json:"slotsCreated"`
	DaysAhead    int    `json:"daysAhead"`
	FromDate     string `json:"fromDate"`
	ToDate       string `json:"toDate"`
}

// Handle POST /api/v1/cron/generate-slots?daysAhead=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	daysAhead := 0
	if raw := r.URL.Query().Get("daysAhead"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("POST /cron/generate-slots - Invalid daysAhead param: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDaysAhead)
			return
		}
		daysAhead = parsed
	}

	result, err := h.useCase.Execute(r.Context(), daysAhead)
	if err != nil {
		if errors.Is(err, generateSlots.ErrValidation) {
			h.logger.Warn("POST /cron/generate-slots - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /cron/generate-slots - Failed to generate: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /cron/generate-slots - Created %d slot(s) for %s..%s",
		result.SlotsCreated, result.FromDate, result.ToDate)
	handlers.RespondJSON(w, http.StatusOK, &GenerateSlotsResponse{
		SlotsCreated: result.SlotsCreated,
		DaysAhead:    result.DaysAhead,
		FromDate:     result.FromDate.String(),
		ToDate:       result.ToDate.String(),
	})
}
