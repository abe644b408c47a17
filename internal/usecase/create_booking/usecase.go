package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crosscourts/court-booking-service/internal/domain"
	courtRepo "github.com/crosscourts/court-booking-service/internal/infra/storage/court"
)

// UseCase use case для создания бронирования
type UseCase struct {
	courtRepo    CourtRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	notifyClient NotifyClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	notifyClient NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:    courtRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		notifyClient: notifyClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// две конкурентные попытки занять один слот не могут пройти обе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: court=%d, date=%s, time=%s-%s",
		req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных и построение диапазона
	timeRange, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты бронирования
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Разрешаем действующую сетку дня
		seeds, err := uc.resolveGrid(txCtx, req.CourtID, req.Date)
		if err != nil {
			return err
		}

		// 5.2. Запрошенный диапазон должен точно совпасть со слотом сетки
		if !matchesGridSlot(timeRange, seeds) {
			uc.logger.Warn("CreateBooking: range %s does not match any grid slot", timeRange)
			return ErrInvalidTimeSlot
		}

		// 5.3. Получаем активные бронирования дня с блокировкой (FOR UPDATE)
		filter := domain.CourtBookingsFilter{
			CourtID: req.CourtID,
			Date:    &req.Date,
		}

		bookings, err := uc.bookingRepo.GetByCourtWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.4. Проверяем, что слот не занят
		if conflict := findOverlappingBooking(timeRange, bookings); conflict != nil {
			uc.logger.Warn("CreateBooking: slot %s already held by booking id=%d", timeRange, conflict.ID)
			return ErrSlotNotAvailable
		}

		// 5.5. Создаем бронирование
		booking := &domain.Booking{
			CourtID:     req.CourtID,
			BookingDate: req.Date,
			Range:       timeRange,
			Details: domain.BookingDetails{
				CustomerName: req.Details.CustomerName,
				Phone:        req.Details.Phone,
				Email:        req.Details.Email,
				OnlinePrice:  req.Details.OnlinePrice,
				CashPrice:    req.Details.CashPrice,
				AddOn:        req.Details.AddOn,
				AddOnPrice:   req.Details.AddOnPrice,
			},
			Status: domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 6. Отправляем подтверждение (graceful degradation: сбой шлюза
	// уведомлений не отменяет уже созданное бронирование)
	if err := uc.notifyClient.SendBookingConfirmation(
		ctx,
		result.Details.Phone,
		court.Name,
		result.BookingDate.Format(domain.DateFormat),
		result.Range.String(),
	); err != nil {
		uc.logger.Warn("CreateBooking: confirmation not delivered for booking id=%d: %v", result.ID, err)
	}

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
		uc.logger.Error("CreateBooking: failed to get custom slots: %v", err)
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
		uc.logger.Error("CreateBooking: failed to get template: %v", err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	if len(seeds) == 0 {
		seeds = domain.DefaultTemplate()
	}

	return seeds, nil
}
