package get_schedule

import (
	"time"

	"github.com/crosscourts/court-booking-service/internal/domain"
)

// buildGrid накладывает активные бронирования на сетку дня: слот, который
// пересекается с активной бронью, переводится в состояние SlotBooked со
// ссылкой на удерживающее бронирование.
//
// Пересечение полуоткрытое: слот занят, только если интервалы реально
// накладываются. Бронирование, заканчивающееся ровно там, где начинается
// слот (или наоборот), слот не держит.
//
// Примеры:
// - Слот 10:00-11:00, бронирование 10:30-11:30 - слот ЗАНЯТ
// - Слот 10:00-11:00, бронирование 09:00-10:00 - слот СВОБОДЕН (граничат)
// - Слот 10:00-11:00, бронирование 11:00-12:00 - слот СВОБОДЕН (граничат)
func buildGrid(courtID int64, date time.Time, seeds []domain.SlotSeed, bookings []*domain.Booking) domain.ScheduleGrid {
	slots := make([]domain.Slot, len(seeds))

	for i, seed := range seeds {
		slot := domain.Slot{
			CourtID: courtID,
			Date:    date,
			Range:   seed.Range,
			Label:   seed.Label,
			State:   domain.SlotAvailable,
		}

		for _, booking := range bookings {
			// Пропускаем неактивные бронирования: отменённая бронь слот не держит
			if !booking.IsActive() {
				continue
			}

			if seed.Range.Overlaps(booking.Range) {
				slot.State = domain.SlotBooked
				id := booking.ID
				slot.BookingID = &id
				break
			}
		}

		slots[i] = slot
	}

	return domain.ScheduleGrid{
		CourtID: courtID,
		Date:    date,
		Slots:   slots,
	}
}

// toResponseSlots конвертирует слоты сетки в модель ответа
func toResponseSlots(grid domain.ScheduleGrid) []Slot {
	result := make([]Slot, len(grid.Slots))

	for i, slot := range grid.Slots {
		result[i] = Slot{
			StartTime: slot.Range.Start,
			EndTime:   slot.Range.End,
			Label:     slot.Label,
			Booked:    slot.IsBooked(),
			BookingID: slot.BookingID,
		}
	}

	return result
}
