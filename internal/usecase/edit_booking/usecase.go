package edit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crosscourts/court-booking-service/internal/domain"
	bookingRepo "github.com/crosscourts/court-booking-service/internal/infra/storage/booking"
)

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case изменения бронирования.
// Изменение данных клиента не трогает слот. Перенос на другой слот
// проходит те же проверки, что и создание: новый диапазон должен
// совпасть со слотом сетки и быть свободным. Сериализуемая транзакция
// закрывает гонку между переносом и конкурентным бронированием.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditBooking: booking=%d", req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EditBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим новый диапазон, если запрошен перенос
	var newRange *domain.TimeRange
	if req.StartTime != nil && req.EndTime != nil {
		timeRange, err := domain.NewTimeRangeFromStrings(*req.StartTime, *req.EndTime)
		if err != nil {
			uc.logger.Warn("EditBooking: invalid time range: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
		}
		newRange = &timeRange
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("EditBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("EditBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3.2. Проверяем, что бронирование можно изменить
		if !booking.CanBeUpdated() {
			uc.logger.Warn("EditBooking: booking id=%d cannot be updated, status=%s", booking.ID, booking.Status)
			return ErrCannotUpdate
		}

		// 3.3. Целевой диапазон: новый при переносе, прежний иначе
		targetRange := booking.Range
		if newRange != nil {
			targetRange = *newRange
		}

		// 3.4. При переносе проверяем целевой слот
		if newRange != nil && !newRange.Equal(booking.Range) {
			// Новый диапазон должен совпасть со слотом действующей сетки
			seeds, err := uc.resolveGrid(txCtx, booking.CourtID, booking.BookingDate)
			if err != nil {
				return err
			}

			if !matchesGridSlot(targetRange, seeds) {
				uc.logger.Warn("EditBooking: range %s does not match any grid slot", targetRange)
				return ErrInvalidTimeSlot
			}

			// Получаем активные бронирования дня с блокировкой (FOR UPDATE)
			filter := domain.CourtBookingsFilter{
				CourtID: booking.CourtID,
				Date:    &booking.BookingDate,
			}

			bookings, err := uc.bookingRepo.GetByCourtWithFilter(txCtx, filter)
			if err != nil {
				uc.logger.Error("EditBooking: failed to get bookings: %v", err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}

			// Целевой слот должен быть свободен от чужих активных броней
			if conflict := findOverlappingBooking(targetRange, bookings, booking.ID); conflict != nil {
				uc.logger.Warn("EditBooking: slot %s already held by booking id=%d", targetRange, conflict.ID)
				return ErrSlotNotAvailable
			}
		}

		// 3.5. Обновляем бронирование
		details := domain.BookingDetails{
			CustomerName: req.Details.CustomerName,
			Phone:        req.Details.Phone,
			Email:        req.Details.Email,
			OnlinePrice:  req.Details.OnlinePrice,
			CashPrice:    req.Details.CashPrice,
			AddOn:        req.Details.AddOn,
			AddOnPrice:   req.Details.AddOnPrice,
		}

		updated, err := uc.bookingRepo.Update(txCtx, booking.ID, details, targetRange)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("EditBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("EditBooking: successfully updated booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:           result.ID,
		CourtID:      result.CourtID,
		BookingDate:  result.BookingDate,
		StartTime:    result.Range.Start,
		EndTime:      result.Range.End,
		Status:       string(result.Status),
		CustomerName: result.Details.CustomerName,
		Phone:        result.Details.Phone,
		Email:        result.Details.Email,
		OnlinePrice:  result.Details.OnlinePrice,
		CashPrice:    result.Details.CashPrice,
		AddOn:        result.Details.AddOn,
		AddOnPrice:   result.Details.AddOnPrice,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// resolveGrid возвращает действующий набор слотов для (корт, дата):
// кастомный override, если он сохранён, иначе шаблон корта,
// иначе встроенный шаблон по умолчанию
func (uc *UseCase) resolveGrid(ctx context.Context, courtID int64, date time.Time) ([]domain.SlotSeed, error) {
	customSlots, err := uc.scheduleRepo.GetCustomSlots(ctx, courtID, date)
	if err != nil {
		uc.logger.Error("EditBooking: failed to get custom slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get custom slots: %v", ErrInternal, err)
	}

	if len(customSlots) > 0 {
		seeds := make([]domain.SlotSeed, len(customSlots))
		for i, slot := range customSlots {
			seeds[i] = domain.SlotSeed{Range: slot.Range, Label: slot.Label}
		}
		return seeds, nil
	}

	seeds, err := uc.scheduleRepo.GetTemplate(ctx, courtID)
	if err != nil {
		uc.logger.Error("EditBooking: failed to get template: %v", err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	if len(seeds) == 0 {
		seeds = domain.DefaultTemplate()
	}

	return seeds, nil
}
