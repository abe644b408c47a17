package domain

// Time format constants
const (
	TimeFormat = "15:04:05"   // HH:MM:SS
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxCustomerNameLength = 200
	MaxPhoneLength        = 32
	MaxEmailLength        = 254
	MaxAddOnLength        = 500
	MaxLabelLength        = 100

	// MaxSlotsPerGrid верхняя граница числа слотов в сетке одного дня
	MaxSlotsPerGrid = 48
)

// Default grid template values.
// Используются, когда у корта нет собственного шаблона слотов.
const (
	DefaultOpenTime            = "06:00:00"
	DefaultCloseTime           = "23:00:00"
	DefaultSlotDurationMinutes = 60
)

// InactiveStatuses список статусов неактивных бронирований.
// Используется при вычислении занятости слотов: отменённая бронь слот не держит.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
}
