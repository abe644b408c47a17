package edit_booking

import (
	"context"
	"time"

	"github.com/crosscourts/court-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCourtWithFilter(ctx context.Context, filter domain.CourtBookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, id int64, details domain.BookingDetails, timeRange domain.TimeRange) (*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория сеток слотов
type ScheduleRepository interface {
	GetCustomSlots(ctx context.Context, courtID int64, date time.Time) ([]domain.Slot, error)
	GetTemplate(ctx context.Context, courtID int64) ([]domain.SlotSeed, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
