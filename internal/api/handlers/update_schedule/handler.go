package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/crosscourts/court-booking-service/internal/api/handlers"
	updateSchedule "github.com/crosscourts/court-booking-service/internal/usecase/update_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCourtID     = "некорректный ID корта"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimeRange   = "некорректный временной диапазон слота"
	msgCourtNotFound      = "корт не найден"
	msgSlotConflict       = "слоты в предложенной сетке пересекаются"
	msgSlotBooked         = "нельзя убрать слот с активным бронированием"
	msgTooManySlots       = "слишком много слотов в сетке"
)

type Handler struct {
	useCase UpdateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase UpdateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/courts/{courtId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем courtId из URL
	vars := mux.Vars(r)
	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /courts/{id}/schedule - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /courts/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(courtID)
	if err != nil {
		h.logger.Warn("PUT /courts/{id}/schedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateSchedule.ErrCourtNotFound):
			h.logger.Warn("PUT /courts/{id}/schedule - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, updateSchedule.ErrSlotConflict):
			h.logger.Warn("PUT /courts/{id}/schedule - Slot conflict: court_id=%d, error=%v", courtID, err)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, updateSchedule.ErrSlotBooked):
			h.logger.Warn("PUT /courts/{id}/schedule - Slot booked: court_id=%d, error=%v", courtID, err)
			handlers.RespondConflict(w, msgSlotBooked)

		case errors.Is(err, updateSchedule.ErrTooManySlots):
			h.logger.Warn("PUT /courts/{id}/schedule - Too many slots: court_id=%d", courtID)
			handlers.RespondBadRequest(w, msgTooManySlots)

		case errors.Is(err, updateSchedule.ErrInvalidTimeRange):
			h.logger.Warn("PUT /courts/{id}/schedule - Invalid time range: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, updateSchedule.ErrInvalidInput):
			h.logger.Warn("PUT /courts/{id}/schedule - Invalid input: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /courts/{id}/schedule - Failed to update schedule: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /courts/{id}/schedule - Schedule replaced: court_id=%d, date=%s, slots=%d",
		courtID, req.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
