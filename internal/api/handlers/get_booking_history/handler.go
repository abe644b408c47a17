package get_booking_history

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/crosscourts/court-booking-service/internal/api/handlers"
	"github.com/crosscourts/court-booking-service/internal/service/bookings"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgInvalidQuery   = "некорректные параметры фильтрации"
	msgCourtNotFound  = "корт не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем courtId из URL
	vars := mux.Vars(r)
	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/bookings - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Разбираем query параметры фильтрации
	req, err := parseQuery(courtID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /courts/{id}/bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetCourtBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/bookings - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/bookings - Invalid filter: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /courts/{id}/bookings - Failed to get bookings: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/bookings - Retrieved %d bookings: court_id=%d", len(result.Bookings), courtID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
