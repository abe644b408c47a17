package update_schedule

import (
	"errors"
	"fmt"

	"github.com/crosscourts/court-booking-service/internal/domain"
)

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("update_schedule: court not found")

	// ErrSlotConflict возвращается, когда слоты в предложенной сетке пересекаются
	ErrSlotConflict = errors.New("update_schedule: proposed slots overlap")

	// ErrSlotBooked возвращается, когда замена сетки осиротила бы активное
	// бронирование: занятый слот нельзя убрать из сетки, не отменив бронь
	ErrSlotBooked = fmt.Errorf("update_schedule: %w", domain.ErrSlotBooked)

	// ErrTooManySlots возвращается, когда предложенная сетка превышает лимит слотов
	ErrTooManySlots = errors.New("update_schedule: too many slots")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне слота
	ErrInvalidTimeRange = errors.New("update_schedule: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_schedule: internal error")
)
