package get_services

import (
	"errors"
	"net/http"

	"github.com/nailsbynatalia/booking-service/internal/api/handlers"
	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/internal/service/catalog"
)

const msgInvalidCategory = "unknown category"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services?category=nails|babysitting
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var category *domain.ServiceCategory
	if raw := r.URL.Query().Get("category"); raw != "" {
		c := domain.ServiceCategory(raw)
		category = &c
	}

	services, err := h.service.ListActive(r.Context(), category)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidCategory)
			return
		}
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServices(services))
}
