package edit_booking

import (
	"fmt"
	"strings"

	"github.com/crosscourts/court-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	// Время задается либо парой, либо не задается вовсе
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return fmt.Errorf("%w: startTime and endTime must be provided together", ErrInvalidInput)
	}

	return validateDetails(&req.Details)
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

// matchesGridSlot проверяет, что диапазон точно совпадает с одним из слотов сетки
func matchesGridSlot(timeRange domain.TimeRange, seeds []domain.SlotSeed) bool {
	for _, seed := range seeds {
		if seed.Range.Equal(timeRange) {
			return true
		}
	}
	return false
}

// findOverlappingBooking возвращает первое активное бронирование (кроме
// игнорируемого), пересекающееся с диапазоном. При переносе бронирование
// не конфликтует само с собой.
func findOverlappingBooking(timeRange domain.TimeRange, bookings []*domain.Booking, ignoreID int64) *domain.Booking {
	for _, booking := range bookings {
		if booking.ID == ignoreID {
			continue
		}
		if !booking.IsActive() {
			continue
		}

		if timeRange.Overlaps(booking.Range) {
			return booking
		}
	}
	return nil
}
