package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/crosscourts/court-booking-service/internal/domain"
)

// validateRequest валидирует входные данные и строит доменный диапазон слота
func validateRequest(req *Request) (domain.TimeRange, error) {
	if req.CourtID <= 0 {
		return domain.TimeRange{}, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return domain.TimeRange{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := validateDetails(&req.Details); err != nil {
		return domain.TimeRange{}, err
	}

	timeRange, err := domain.NewTimeRangeFromStrings(req.StartTime, req.EndTime)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	return timeRange, nil
}

// validateDetails валидирует данные клиента и цен
func validateDetails(details *DetailsInput) error {
	name := strings.TrimSpace(details.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	phone := strings.TrimSpace(details.Phone)
	if phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if len(details.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}

	if details.OnlinePrice < 0 || details.CashPrice < 0 || details.AddOnPrice < 0 {
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
	}

	if details.AddOn != nil && len(*details.AddOn) > domain.MaxAddOnLength {
		return fmt.Errorf("%w: add-on is too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}

// matchesGridSlot проверяет, что запрошенный диапазон точно совпадает
// с одним из слотов действующей сетки дня
func matchesGridSlot(timeRange domain.TimeRange, seeds []domain.SlotSeed) bool {
	for _, seed := range seeds {
		if seed.Range.Equal(timeRange) {
			return true
		}
	}
	return false
}

// findOverlappingBooking возвращает первое активное бронирование,
// пересекающееся с запрошенным диапазоном.
//
// Пересечение полуоткрытое: бронирование, граничащее с диапазоном
// (конец одного равен началу другого), пересечением не считается.
func findOverlappingBooking(timeRange domain.TimeRange, bookings []*domain.Booking) *domain.Booking {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		if timeRange.Overlaps(booking.Range) {
			return booking
		}
	}
	return nil
}
