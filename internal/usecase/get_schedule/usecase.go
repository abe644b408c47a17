package get_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crosscourts/court-booking-service/internal/domain"
	courtRepo "github.com/crosscourts/court-booking-service/internal/infra/storage/court"
)

// UseCase use case для получения сетки слотов корта на день
type UseCase struct {
	courtRepo    CourtRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:    courtRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки слотов.
// Сетка дня определяется по приоритету: кастомный override на дату ->
// шаблон корта -> встроенный шаблон по умолчанию. Занятость слотов
// вычисляется наложением активных бронирований на сетку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSchedule: court=%d, date=%s", req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование корта
	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetSchedule: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetSchedule: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Разрешаем действующую сетку дня
	seeds, custom, err := uc.resolveGrid(ctx, req.CourtID, req.Date)
	if err != nil {
		return nil, err
	}

	// 4. Получаем активные бронирования на эту дату
	filter := domain.CourtBookingsFilter{
		CourtID: req.CourtID,
		Date:    &req.Date,
	}

	bookings, err := uc.bookingRepo.GetByCourtWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Накладываем бронирования на сетку
	grid := buildGrid(req.CourtID, req.Date, seeds, bookings)
	slots := toResponseSlots(grid)

	uc.logger.Info("GetSchedule: resolved %d slots for court=%d, date=%s (custom=%v)",
		len(slots), req.CourtID, req.Date.Format(domain.DateFormat), custom)

	return &Response{
		CourtID: req.CourtID,
		Date:    req.Date,
		Custom:  custom,
		Slots:   slots,
	}, nil
}

// resolveGrid возвращает действующий набор слотов для (корт, дата):
// кастомный override, если он сохранён, иначе шаблон корта,
// иначе встроенный шаблон по умолчанию
func (uc *UseCase) resolveGrid(ctx context.Context, courtID int64, date time.Time) ([]domain.SlotSeed, bool, error) {
	// Сначала кастомная сетка на дату
	customSlots, err := uc.scheduleRepo.GetCustomSlots(ctx, courtID, date)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to get custom slots: %v", err)
		return nil, false, fmt.Errorf("%w: failed to get custom slots: %v", ErrInternal, err)
	}

	if len(customSlots) > 0 {
		seeds := make([]domain.SlotSeed, len(customSlots))
		for i, slot := range customSlots {
			seeds[i] = domain.SlotSeed{Range: slot.Range, Label: slot.Label}
		}
		return seeds, true, nil
	}

	// Затем шаблон корта
	seeds, err := uc.scheduleRepo.GetTemplate(ctx, courtID)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to get template: %v", err)
		return nil, false, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	// Если шаблон не настроен, действует встроенный шаблон по умолчанию
	if len(seeds) == 0 {
		seeds = domain.DefaultTemplate()
	}

	return seeds, false, nil
}
