package update_booking

import (
	"errors"
	"net/http"

	"github.com/nailsbynatalia/booking-service/internal/api/handlers"
	getBooking "github.com/nailsbynatalia/booking-service/internal/api/handlers/get_booking"
	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidID          = "booking id must be a valid uuid"
	msgNothingToUpdate    = "request must set status or adminNotes"
	msgBookingNotFound    = "booking not found"
	msgInvalidTransition  = "status transition not allowed"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// UpdateBookingRequest HTTP request model. Status and adminNotes can be
// updated independently or together.
type UpdateBookingRequest struct {
	Status        *string `json:"status,omitempty"`
	DeclineReason *string `json:"declineReason,omitempty"`
	AdminNotes    *string `json:"adminNotes,omitempty"`
}

// Handle PATCH /api/v1/admin/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseUUIDVar(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Status == nil && req.AdminNotes == nil {
		handlers.RespondBadRequest(w, msgNothingToUpdate)
		return
	}

	var updated *domain.Booking

	if req.Status != nil {
		updated, err = h.service.UpdateStatus(r.Context(), id, domain.BookingStatus(*req.Status), req.DeclineReason)
		if err != nil {
			h.respondServiceError(w, id, err)
			return
		}
	}

	if req.AdminNotes != nil {
		updated, err = h.service.SetAdminNotes(r.Context(), id, *req.AdminNotes)
		if err != nil {
			h.respondServiceError(w, id, err)
			return
		}
	}

	h.logger.Info("PATCH /admin/bookings/{id} - Booking updated: booking_id=%s, status=%s", id, updated.Status)
	handlers.RespondJSON(w, http.StatusOK, getBooking.FromDomain(updated))
}

func (h *Handler) respondServiceError(w http.ResponseWriter, id interface{}, err error) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("PATCH /admin/bookings/{id} - Not found: booking_id=%s", id)
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, bookings.ErrInvalidTransition):
		h.logger.Warn("PATCH /admin/bookings/{id} - Invalid transition: booking_id=%s, error=%v", id, err)
		handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

	case errors.Is(err, bookings.ErrInvalidInput):
		h.logger.Warn("PATCH /admin/bookings/{id} - Invalid input: booking_id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("PATCH /admin/bookings/{id} - Failed to update: booking_id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
	}
}
