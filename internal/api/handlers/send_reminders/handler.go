package send_reminders

import (
	"errors"
	"net/http"

	"github.com/nailsbynatalia/booking-service/internal/api/handlers"
	scanReminders "github.com/nailsbynatalia/booking-service/internal/usecase/scan_reminders"
	"github.com/nailsbynatalia/booking-service/pkg/types"
)

const msgInvalidDate = "invalid date format, expected YYYY-MM-DD"

type Handler struct {
	useCase ScanRemindersUseCase
	logger  Logger
}

func NewHandler(useCase ScanRemindersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SendRemindersResponse HTTP response model
type SendRemindersResponse struct {
	TargetDate      string `json:"targetDate"`
	BookingsScanned int    `json:"bookingsScanned"`
	RecordsCreated  int64  `json:"recordsCreated"`
	Delivered       int    `json:"delivered"`
	DeliveryFailed  int    `json:"deliveryFailed"`
}

// Handle POST /api/v1/cron/send-reminders?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	targetDate := types.DateString(r.URL.Query().Get("date"))

	result, err := h.useCase.Execute(r.Context(), targetDate)
	if err != nil {
		if errors.Is(err, scanReminders.ErrValidation) {
			h.logger.Warn("POST /cron/send-reminders - Invalid date: %q", targetDate)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("POST /cron/send-reminders - Scan failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /cron/send-reminders - %s: %d record(s) created, %d delivered",
		result.TargetDate, result.RecordsCreated, result.Delivered)
	handlers.RespondJSON(w, http.StatusOK, &SendRemindersResponse{
		TargetDate:      result.TargetDate.String(),
		BookingsScanned: result.BookingsScanned,
		RecordsCreated:  result.RecordsCreated,
		Delivered:       result.Delivered,
		DeliveryFailed:  result.DeliveryFailed,
	})
}
