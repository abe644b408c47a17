package update_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/crosscourts/court-booking-service/internal/domain"
	courtRepo "github.com/crosscourts/court-booking-service/internal/infra/storage/court"
)

// UseCase use case для полной замены сетки слотов (корт, дата)
type UseCase struct {
	courtRepo    CourtRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:    courtRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case замены сетки.
// Замена атомарна: либо новая сетка применяется целиком, либо при любой
// ошибке прежняя сетка остается нетронутой. Использует сериализуемую
// транзакцию, чтобы конкурентное бронирование не проскочило между
// проверкой занятости и записью новой сетки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSchedule: court=%d, date=%s, slots=%d",
		req.CourtID, req.Date.Format(domain.DateFormat), len(req.Slots))

	// 1. Валидация входных данных и построение доменных слотов
	seeds, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Сортируем слоты хронологически
	domain.SortSeeds(seeds)

	// 3. Проверяем целостность сетки: пересечения и лимит слотов
	if err := domain.ValidateSeeds(seeds); err != nil {
		var conflict *domain.OverlapConflictError
		switch {
		case errors.As(err, &conflict):
			uc.logger.Warn("UpdateSchedule: overlap conflict: %v", conflict)
			return nil, fmt.Errorf("%w: %s overlaps %s", ErrSlotConflict, conflict.RangeA, conflict.RangeB)
		case errors.Is(err, domain.ErrTooManySlots):
			uc.logger.Warn("UpdateSchedule: too many slots: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrTooManySlots, err)
		default:
			uc.logger.Error("UpdateSchedule: seeds validation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 4. Проверяем существование корта
	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("UpdateSchedule: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("UpdateSchedule: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var saved []domain.Slot

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем активные бронирования дня с блокировкой (FOR UPDATE)
		filter := domain.CourtBookingsFilter{
			CourtID: req.CourtID,
			Date:    &req.Date,
		}

		bookings, err := uc.bookingRepo.GetByCourtWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("UpdateSchedule: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Каждое активное бронирование должно сохранить свой слот
		// в новой сетке, иначе вся замена отклоняется
		if err := validateBookingsPreserved(seeds, bookings); err != nil {
			uc.logger.Warn("UpdateSchedule: booking preservation failed: %v", err)
			return err
		}

		// 5.3. Заменяем сетку целиком
		saved, err = uc.scheduleRepo.ReplaceCustomSlots(txCtx, req.CourtID, req.Date, seeds)
		if err != nil {
			uc.logger.Error("UpdateSchedule: failed to replace slots: %v", err)
			return fmt.Errorf("%w: failed to replace slots: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateSchedule: successfully replaced grid for court=%d, date=%s with %d slots",
		req.CourtID, req.Date.Format(domain.DateFormat), len(saved))

	// Конвертируем в response
	slots := make([]Slot, len(saved))
	for i, slot := range saved {
		slots[i] = Slot{
			ID:        slot.ID,
			StartTime: slot.Range.Start,
			EndTime:   slot.Range.End,
			Label:     slot.Label,
		}
	}

	return &Response{
		CourtID: req.CourtID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}
