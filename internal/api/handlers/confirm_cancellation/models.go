package confirm_cancellation

import (
	"time"

	confirmCancellation "github.com/crosscourts/court-booking-service/internal/usecase/confirm_cancellation"
)

// ConfirmCancellationRequest HTTP request model
type ConfirmCancellationRequest struct {
	Code string `json:"code"`
}

// CancellationResponse HTTP response model
type CancellationResponse struct {
	BookingID   int64  `json:"bookingId"`
	Status      string `json:"status"`
	CancelledAt string `json:"cancelledAt"` // ISO 8601
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmCancellation.Response) *CancellationResponse {
	return &CancellationResponse{
		BookingID:   resp.BookingID,
		Status:      resp.Status,
		CancelledAt: resp.CancelledAt.Format(time.RFC3339),
	}
}
