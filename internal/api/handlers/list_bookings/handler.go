package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nailsbynatalia/booking-service/internal/api/handlers"
	getBooking "github.com/nailsbynatalia/booking-service/internal/api/handlers/get_booking"
	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/internal/service/bookings"
)

const (
	msgInvalidLimit  = "limit must be an integer"
	msgInvalidOffset = "offset must be an integer"
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

// BookingsListResponse HTTP response model
type BookingsListResponse struct {
	Bookings []*getBooking.BookingResponse `json:"bookings"`
	Total    int64                         `json:"total"`
	Limit    int                           `json:"limit"`
	Offset   int                           `json:"offset"`
}

// Handle GET /api/v1/admin/bookings?status=&category=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := domain.BookingsFilter{}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("category"); raw != "" {
		category := domain.ServiceCategory(raw)
		filter.Category = &category
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		filter.Limit = limit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
		filter.Offset = offset
	}

	items, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := make([]*getBooking.BookingResponse, 0, len(items))
	for _, b := range items {
		out = append(out, getBooking.FromDomain(b))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	if limit > domain.MaxListLimit {
		limit = domain.MaxListLimit
	}

	handlers.RespondJSON(w, http.StatusOK, &BookingsListResponse{
		Bookings: out,
		Total:    total,
		Limit:    limit,
		Offset:   filter.Offset,
	})
}
