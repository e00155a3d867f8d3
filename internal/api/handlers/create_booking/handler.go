package create_booking

import (
	"errors"
	"net/http"

	"github.com/nailsbynatalia/booking-service/internal/api/handlers"
	claimSlots "github.com/nailsbynatalia/booking-service/internal/usecase/claim_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidUUID        = "slotIds and serviceId must be valid uuids"
	msgServiceNotFound    = "service not found"
	msgSlotConflict       = "one or more slots are no longer available"
	msgNotContiguous      = "slots must form one contiguous block on a single date"
)

type Handler struct {
	useCase ClaimSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ClaimSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse ids: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUUID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, claimSlots.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, claimSlots.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, claimSlots.ErrSlotConflict):
			h.logger.Info("POST /bookings - Slot conflict: slot_ids=%v", req.SlotIDs)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, claimSlots.ErrSlotsNotContiguous):
			h.logger.Warn("POST /bookings - Slots not contiguous: slot_ids=%v", req.SlotIDs)
			handlers.RespondBadRequest(w, msgNotContiguous)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, slots=%d",
		result.BookingID, len(useCaseReq.SlotIDs))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResult(result))
}
