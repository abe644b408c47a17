package update_schedule

import (
	"fmt"

	"github.com/crosscourts/court-booking-service/internal/domain"
)

// validateRequest валидирует входные данные и строит доменные слоты.
// Проверка целостности (пересечения, лимит) выполняется отдельно через
// domain.ValidateSeeds - здесь только пер-слотовая валидация.
func validateRequest(req *Request) ([]domain.SlotSeed, error) {
	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	seeds := make([]domain.SlotSeed, 0, len(req.Slots))
	for i, input := range req.Slots {
		if len(input.Label) > domain.MaxLabelLength {
			return nil, fmt.Errorf("%w: slot %d: label is too long", ErrInvalidInput, i)
		}

		timeRange, err := domain.NewTimeRangeFromStrings(input.StartTime, input.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %d: %v", ErrInvalidTimeRange, i, err)
		}

		seeds = append(seeds, domain.SlotSeed{
			Range: timeRange,
			Label: input.Label,
		})
	}

	return seeds, nil
}

// validateBookingsPreserved проверяет, что каждое активное бронирование дня
// по-прежнему имеет свой слот в предложенной сетке: диапазон брони должен
// точно совпадать с одним из новых слотов
func validateBookingsPreserved(seeds []domain.SlotSeed, bookings []*domain.Booking) error {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		matched := false
		for _, seed := range seeds {
			if seed.Range.Equal(booking.Range) {
				matched = true
				break
			}
		}

		if !matched {
			return fmt.Errorf("%w: booking id=%d occupies %s", ErrSlotBooked, booking.ID, booking.Range)
		}
	}

	return nil
}
