package get_schedule

import (
	"time"

	"github.com/crosscourts/court-booking-service/pkg/types"
)

// Request модель запроса на получение сетки слотов корта
type Request struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата сетки (без времени)
}

// Response модель ответа с сеткой слотов на день
type Response struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата, на которую запрашивалась сетка
	Custom  bool      // true, если действует кастомная сетка на эту дату
	Slots   []Slot    // Слоты дня в хронологическом порядке
}

// Slot модель слота сетки с вычисленным состоянием занятости
type Slot struct {
	StartTime types.TimeString // Время начала слота
	EndTime   types.TimeString // Время конца слота
	Label     string           // Отображаемое название слота
	Booked    bool             // Занят ли слот активным бронированием
	BookingID *int64           // ID удерживающего бронирования (если занят)
}
