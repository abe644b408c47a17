package get_schedule

import (
	"context"
	"time"

	"github.com/crosscourts/court-booking-service/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// ScheduleRepository интерфейс репозитория сеток слотов
type ScheduleRepository interface {
	GetCustomSlots(ctx context.Context, courtID int64, date time.Time) ([]domain.Slot, error)
	GetTemplate(ctx context.Context, courtID int64) ([]domain.SlotSeed, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByCourtWithFilter(ctx context.Context, filter domain.CourtBookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
