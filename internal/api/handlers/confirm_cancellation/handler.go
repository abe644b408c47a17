package confirm_cancellation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/crosscourts/court-booking-service/internal/api/handlers"
	confirmCancellation "github.com/crosscourts/court-booking-service/internal/usecase/confirm_cancellation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgNotFound           = "бронирование не найдено"
	msgAlreadyCancelled   = "бронирование уже отменено"
	msgCodeMismatch       = "неверный код подтверждения"
	msgCodeExpired        = "код подтверждения истёк"
	msgCodeAlreadyUsed    = "код подтверждения уже использован"
)

type Handler struct {
	useCase ConfirmCancellationUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmCancellationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/cancellation-verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/cancellation-verify - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ConfirmCancellationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/cancellation-verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmCancellation.Request{
		BookingID: bookingID,
		Code:      req.Code,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmCancellation.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/cancellation-verify - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmCancellation.ErrAlreadyCancelled):
			h.logger.Warn("POST /bookings/{id}/cancellation-verify - Already cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, confirmCancellation.ErrCodeMismatch):
			h.logger.Warn("POST /bookings/{id}/cancellation-verify - Code mismatch: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCodeMismatch)

		case errors.Is(err, confirmCancellation.ErrCodeExpired):
			h.logger.Warn("POST /bookings/{id}/cancellation-verify - Code expired: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCodeExpired)

		case errors.Is(err, confirmCancellation.ErrCodeAlreadyUsed):
			h.logger.Warn("POST /bookings/{id}/cancellation-verify - Code already used: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCodeAlreadyUsed)

		case errors.Is(err, confirmCancellation.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/cancellation-verify - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/{id}/cancellation-verify - Failed to confirm cancellation: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancellation-verify - Booking cancelled: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
