package request_cancellation

import "time"

// Request модель запроса на выпуск кода отмены
type Request struct {
	BookingID int64 // ID бронирования
}

// Response модель ответа на выпуск кода.
// Сам код в ответ не попадает: он уходит клиенту по отдельному каналу
type Response struct {
	BookingID int64     // ID бронирования
	ExpiresAt time.Time // Момент, когда код перестанет действовать
	Delivered bool      // Доставлен ли код через шлюз уведомлений
}
