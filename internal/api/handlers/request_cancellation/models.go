package request_cancellation

import (
	"time"

	requestCancellation "github.com/crosscourts/court-booking-service/internal/usecase/request_cancellation"
)

// CancellationCodeResponse HTTP response model.
// Код в тело ответа не попадает: он доставляется клиенту по WhatsApp
type CancellationCodeResponse struct {
	BookingID int64  `json:"bookingId"`
	ExpiresAt string `json:"expiresAt"` // ISO 8601
	Delivered bool   `json:"delivered"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *requestCancellation.Response) *CancellationCodeResponse {
	return &CancellationCodeResponse{
		BookingID: resp.BookingID,
		ExpiresAt: resp.ExpiresAt.Format(time.RFC3339),
		Delivered: resp.Delivered,
	}
}
