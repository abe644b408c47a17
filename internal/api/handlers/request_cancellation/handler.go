package request_cancellation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/crosscourts/court-booking-service/internal/api/handlers"
	requestCancellation "github.com/crosscourts/court-booking-service/internal/usecase/request_cancellation"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgAlreadyCancelled = "бронирование уже отменено"
)

type Handler struct {
	useCase RequestCancellationUseCase
	logger  Logger
}

func NewHandler(useCase RequestCancellationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/cancellation-code
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/cancellation-code - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &requestCancellation.Request{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, requestCancellation.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/cancellation-code - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, requestCancellation.ErrAlreadyCancelled):
			h.logger.Warn("POST /bookings/{id}/cancellation-code - Already cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, requestCancellation.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/cancellation-code - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("POST /bookings/{id}/cancellation-code - Failed to issue code: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancellation-code - Code issued: booking_id=%d, delivered=%v",
		bookingID, result.Delivered)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
