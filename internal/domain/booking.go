package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingDetails carries the customer and pricing fields of a booking.
// Validated at the API boundary; the original admin UI collected these
// in a loose form object.
type BookingDetails struct {
	CustomerName string
	Phone        string
	Email        string
	OnlinePrice  float64
	CashPrice    float64
	AddOn        *string
	AddOnPrice   float64
}

// Booking represents a court booking attached to one grid slot.
// Cancellation is logical: the row is retained for audit with
// Status = cancelled and the slot reverts to available.
type Booking struct {
	ID          int64
	CourtID     int64
	BookingDate time.Time
	Range       TimeRange
	Details     BookingDetails
	Status      BookingStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking may enter the cancellation flow
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking may be edited
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusConfirmed
}

// CourtBookingsFilter фильтр для выборки бронирований корта
type CourtBookingsFilter struct {
	CourtID          int64          // Обязательный параметр
	Date             *time.Time     // Конкретная дата (опционально)
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
