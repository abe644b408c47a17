package create_booking

import (
	"time"

	"github.com/crosscourts/court-booking-service/internal/domain"
	createBooking "github.com/crosscourts/court-booking-service/internal/usecase/create_booking"
)

// BookingDetailsInput HTTP модель данных клиента и цен
type BookingDetailsInput struct {
	CustomerName string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	OnlinePrice  float64 `json:"onlinePrice"`
	CashPrice    float64 `json:"cashPrice"`
	AddOn        *string `json:"addOn,omitempty"`
	AddOnPrice   float64 `json:"addOnPrice,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID     int64               `json:"courtId"`
	BookingDate string              `json:"bookingDate"` // "2025-10-15"
	StartTime   string              `json:"startTime"`   // "10:00" или "10:00:00"
	EndTime     string              `json:"endTime"`
	Details     BookingDetailsInput `json:"bookingDetails"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	CourtID     int64   `json:"courtId"`
	BookingDate string  `json:"bookingDate"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Status      string  `json:"status"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	OnlinePrice float64 `json:"onlinePrice"`
	CashPrice   float64 `json:"cashPrice"`
	AddOn       *string `json:"addOn,omitempty"`
	AddOnPrice  float64 `json:"addOnPrice,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CourtID:   r.CourtID,
		Date:      bookingDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Details: createBooking.DetailsInput{
			CustomerName: r.Details.CustomerName,
			Phone:        r.Details.Phone,
			Email:        r.Details.Email,
			OnlinePrice:  r.Details.OnlinePrice,
			CashPrice:    r.Details.CashPrice,
			AddOn:        r.Details.AddOn,
			AddOnPrice:   r.Details.AddOnPrice,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		CourtID:     resp.CourtID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Status:      resp.Status,
		Name:        resp.CustomerName,
		Phone:       resp.Phone,
		Email:       resp.Email,
		OnlinePrice: resp.OnlinePrice,
		CashPrice:   resp.CashPrice,
		AddOn:       resp.AddOn,
		AddOnPrice:  resp.AddOnPrice,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
