package confirm_cancellation

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/crosscourts/court-booking-service/internal/domain"
	bookingRepo "github.com/crosscourts/court-booking-service/internal/infra/storage/booking"
	cancellationRepo "github.com/crosscourts/court-booking-service/internal/infra/storage/cancellation"
)

// UseCase use case для подтверждения отмены бронирования кодом
type UseCase struct {
	bookingRepo      BookingRepository
	cancellationRepo CancellationRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	cancellationRepo CancellationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		cancellationRepo: cancellationRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case подтверждения отмены.
// Проверка кода и отмена идут в одной сериализуемой транзакции: код
// помечается использованным и бронирование отменяется атомарно, так что
// две конкурентные попытки с одним кодом не пройдут обе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmCancellation: booking=%d", req.BookingID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		uc.logger.Warn("ConfirmCancellation: invalid booking id=%d", req.BookingID)
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		uc.logger.Warn("ConfirmCancellation: empty code for booking id=%d", req.BookingID)
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Выполняем проверку и отмену в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ConfirmCancellation: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ConfirmCancellation: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3.2. Уже отменённое бронирование второй раз не отменяется
		if !booking.CanBeCancelled() {
			uc.logger.Warn("ConfirmCancellation: booking id=%d is already cancelled", booking.ID)
			return ErrAlreadyCancelled
		}

		// 3.3. Получаем последний выпущенный код с блокировкой (FOR UPDATE)
		request, err := uc.cancellationRepo.GetLatestByBooking(txCtx, booking.ID)
		if err != nil {
			if errors.Is(err, cancellationRepo.ErrRequestNotFound) {
				// Код не выпускался - для клиента неотличимо от неверного кода
				uc.logger.Warn("ConfirmCancellation: no code issued for booking id=%d", booking.ID)
				return ErrCodeMismatch
			}
			uc.logger.Error("ConfirmCancellation: failed to get request for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		// 3.4. Проверяем код: использованность, срок действия, совпадение
		if request.Verified {
			uc.logger.Warn("ConfirmCancellation: code already used for booking id=%d", booking.ID)
			return ErrCodeAlreadyUsed
		}

		if request.IsExpired(now) {
			uc.logger.Warn("ConfirmCancellation: code expired for booking id=%d", booking.ID)
			return ErrCodeExpired
		}

		if subtle.ConstantTimeCompare([]byte(request.Code), []byte(code)) != 1 {
			uc.logger.Warn("ConfirmCancellation: code mismatch for booking id=%d", booking.ID)
			return ErrCodeMismatch
		}

		// 3.5. Помечаем код использованным
		if err := uc.cancellationRepo.MarkVerified(txCtx, request.ID); err != nil {
			uc.logger.Error("ConfirmCancellation: failed to mark code verified: %v", err)
			return fmt.Errorf("%w: failed to mark code verified: %v", ErrInternal, err)
		}

		// 3.6. Отменяем бронирование (логическое удаление)
		if err := uc.bookingRepo.Cancel(txCtx, booking.ID); err != nil {
			uc.logger.Error("ConfirmCancellation: failed to cancel booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmCancellation: successfully cancelled booking id=%d", req.BookingID)

	return &Response{
		BookingID:   req.BookingID,
		Status:      string(domain.StatusCancelled),
		CancelledAt: now,
	}, nil
}
