package confirm_cancellation

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_cancellation: booking not found")

	// ErrAlreadyCancelled возвращается, когда бронирование уже отменено
	ErrAlreadyCancelled = errors.New("confirm_cancellation: booking is already cancelled")

	// ErrCodeMismatch возвращается, когда код не совпадает с последним
	// выпущенным (или код для бронирования вовсе не выпускался)
	ErrCodeMismatch = errors.New("confirm_cancellation: code mismatch")

	// ErrCodeExpired возвращается, когда окно действия кода закрылось
	ErrCodeExpired = errors.New("confirm_cancellation: code expired")

	// ErrCodeAlreadyUsed возвращается при повторном вводе использованного кода
	ErrCodeAlreadyUsed = errors.New("confirm_cancellation: code already used")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_cancellation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_cancellation: internal error")
)
