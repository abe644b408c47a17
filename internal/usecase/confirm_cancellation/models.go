package confirm_cancellation

import "time"

// Request модель запроса на подтверждение отмены
type Request struct {
	BookingID int64  // ID бронирования
	Code      string // Введённый код подтверждения
}

// Response модель ответа с отменённым бронированием
type Response struct {
	BookingID   int64     // ID бронирования
	Status      string    // Статус после отмены
	CancelledAt time.Time // Момент отмены
}
