package edit_booking

import (
	"time"

	"github.com/crosscourts/court-booking-service/internal/domain"
	editBooking "github.com/crosscourts/court-booking-service/internal/usecase/edit_booking"
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

// EditBookingRequest HTTP request model.
// startTime/endTime опциональны: без них меняются только данные клиента
type EditBookingRequest struct {
	Details   BookingDetailsInput `json:"bookingDetails"`
	StartTime *string             `json:"startTime,omitempty"`
	EndTime   *string             `json:"endTime,omitempty"`
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
func (r *EditBookingRequest) ToUseCaseRequest(bookingID int64) *editBooking.Request {
	return &editBooking.Request{
		BookingID: bookingID,
		Details: editBooking.DetailsInput{
			CustomerName: r.Details.CustomerName,
			Phone:        r.Details.Phone,
			Email:        r.Details.Email,
			OnlinePrice:  r.Details.OnlinePrice,
			CashPrice:    r.Details.CashPrice,
			AddOn:        r.Details.AddOn,
			AddOnPrice:   r.Details.AddOnPrice,
		},
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *editBooking.Response) *BookingResponse {
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
