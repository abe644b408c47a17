package models

import (
	"errors"
	"time"

	"github.com/crosscourts/court-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetCourtBookingsRequest запрос на получение истории бронирований корта
type GetCourtBookingsRequest struct {
	CourtID          int64      `json:"courtId"`
	Date             *time.Time `json:"date,omitempty"`             // Конкретный день (опционально)
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetCourtBookingsRequest) ToDomainFilter() (domain.CourtBookingsFilter, error) {
	filter := domain.CourtBookingsFilter{
		CourtID:          r.CourtID,
		Date:             r.Date,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingDetailsResponse данные клиента и цен бронирования
type BookingDetailsResponse struct {
	CustomerName string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	OnlinePrice  float64 `json:"onlinePrice"`
	CashPrice    float64 `json:"cashPrice"`
	AddOn        *string `json:"addOn,omitempty"`
	AddOnPrice   float64 `json:"addOnPrice,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64                  `json:"id"`
	CourtID     int64                  `json:"courtId"`
	BookingDate string                 `json:"bookingDate"` // "2025-10-15"
	StartTime   string                 `json:"startTime"`   // "10:00:00"
	EndTime     string                 `json:"endTime"`     // "11:00:00"
	Status      string                 `json:"status"`
	Details     BookingDetailsResponse `json:"bookingDetails"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:          b.ID,
		CourtID:     b.CourtID,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.Range.Start.String(),
		EndTime:     b.Range.End.String(),
		Status:      string(b.Status),
		Details: BookingDetailsResponse{
			CustomerName: b.Details.CustomerName,
			Phone:        b.Details.Phone,
			Email:        b.Details.Email,
			OnlinePrice:  b.Details.OnlinePrice,
			CashPrice:    b.Details.CashPrice,
			AddOn:        b.Details.AddOn,
			AddOnPrice:   b.Details.AddOnPrice,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusConfirmed,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
