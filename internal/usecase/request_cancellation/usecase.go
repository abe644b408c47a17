package request_cancellation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crosscourts/court-booking-service/internal/domain"
	bookingRepo "github.com/crosscourts/court-booking-service/internal/infra/storage/booking"
)

// UseCase use case для выпуска кода подтверждения отмены
type UseCase struct {
	bookingRepo      BookingRepository
	cancellationRepo CancellationRepository
	notifyClient     NotifyClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	codeDigits       int
	codeTTL          time.Duration
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	cancellationRepo CancellationRepository,
	notifyClient NotifyClient,
	txManager TransactionManager,
	codeDigits int,
	codeTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		cancellationRepo: cancellationRepo,
		notifyClient:     notifyClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		codeDigits:       codeDigits,
		codeTTL:          codeTTL,
		logger:           logger,
	}
}

// Execute выполняет use case выпуска кода отмены.
// Повторный запрос для того же бронирования обесценивает прежний
// невведённый код: действителен только последний выпущенный.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestCancellation: booking=%d", req.BookingID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		uc.logger.Warn("RequestCancellation: invalid booking id=%d", req.BookingID)
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Генерируем одноразовый код
	code, err := generateCode(uc.codeDigits)
	if err != nil {
		uc.logger.Error("RequestCancellation: failed to generate code: %v", err)
		return nil, err
	}

	// Переменные для хранения результата
	var booking *domain.Booking
	var issued *domain.CancellationRequest

	// 4. Выполняем операции с БД в транзакции: supersede прежних кодов
	// и вставка нового должны быть атомарны
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err = uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RequestCancellation: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RequestCancellation: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 4.2. Код выпускается только для активного бронирования
		if !booking.CanBeCancelled() {
			uc.logger.Warn("RequestCancellation: booking id=%d is already cancelled", booking.ID)
			return ErrAlreadyCancelled
		}

		// 4.3. Выпускаем код, обесценивая прежние
		issued, err = uc.cancellationRepo.Create(txCtx, &domain.CancellationRequest{
			BookingID: booking.ID,
			Code:      code,
			IssuedAt:  now,
			ExpiresAt: now.Add(uc.codeTTL),
		})
		if err != nil {
			uc.logger.Error("RequestCancellation: failed to create request: %v", err)
			return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RequestCancellation: issued code for booking id=%d, expires at %s",
		booking.ID, issued.ExpiresAt.Format(time.RFC3339))

	// 5. Отправляем код клиенту (graceful degradation: сбой шлюза не
	// отменяет выпуск - код остается валидным до истечения окна)
	delivered := true
	if err := uc.notifyClient.SendCancellationCode(ctx, booking.Details.Phone, code); err != nil {
		uc.logger.Warn("RequestCancellation: code not delivered for booking id=%d: %v", booking.ID, err)
		delivered = false
	}

	return &Response{
		BookingID: booking.ID,
		ExpiresAt: issued.ExpiresAt,
		Delivered: delivered,
	}, nil
}
