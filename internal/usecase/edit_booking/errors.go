package edit_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("edit_booking: booking not found")

	// ErrCannotUpdate возвращается, когда бронирование нельзя изменить
	// (например, оно уже отменено)
	ErrCannotUpdate = errors.New("edit_booking: booking cannot be updated")

	// ErrInvalidTimeSlot возвращается, когда новый диапазон не совпадает
	// ни с одним слотом действующей сетки дня
	ErrInvalidTimeSlot = errors.New("edit_booking: time range does not match a grid slot")

	// ErrSlotNotAvailable возвращается, когда целевой слот занят другим бронированием
	ErrSlotNotAvailable = errors.New("edit_booking: slot is not available")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("edit_booking: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("edit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_booking: internal error")
)
