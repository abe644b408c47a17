package update_schedule

import (
	"time"

	"github.com/crosscourts/court-booking-service/pkg/types"
)

// SlotInput входная модель одного слота предлагаемой сетки
type SlotInput struct {
	StartTime string // Время начала ("10:00" или "10:00:00")
	EndTime   string // Время конца
	Label     string // Отображаемое название (опционально)
}

// Request модель запроса на замену сетки (корт, дата)
type Request struct {
	CourtID int64       // ID корта
	Date    time.Time   // Дата сетки (без времени)
	Slots   []SlotInput // Полный новый набор слотов дня
}

// Response модель ответа с сохранённой сеткой
type Response struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата сетки
	Slots   []Slot    // Сохранённые слоты в хронологическом порядке
}

// Slot модель сохранённого слота
type Slot struct {
	ID        int64            // ID слота
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время конца
	Label     string           // Отображаемое название
}
