package request_cancellation

import (
	"context"
	"time"

	"github.com/crosscourts/court-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// CancellationRepository интерфейс репозитория кодов отмены
type CancellationRepository interface {
	Create(ctx context.Context, request *domain.CancellationRequest) (*domain.CancellationRequest, error)
}

// NotifyClient интерфейс клиента шлюза уведомлений
type NotifyClient interface {
	SendCancellationCode(ctx context.Context, phone, code string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
