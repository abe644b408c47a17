package get_courts

import (
	"errors"
	"net/http"

	"github.com/crosscourts/court-booking-service/internal/api/handlers"
	"github.com/crosscourts/court-booking-service/internal/service/courts"
)

const (
	msgInvalidCategory = "некорректная категория корта"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Опциональный фильтр по категории
	var category *string
	if value := r.URL.Query().Get("category"); value != "" {
		category = &value
	}

	result, err := h.service.List(r.Context(), category)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrInvalidCategory):
			h.logger.Warn("GET /courts - Invalid category: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		default:
			h.logger.Error("GET /courts - Failed to list courts: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts - Retrieved %d courts", len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
