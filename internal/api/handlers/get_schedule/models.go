package get_schedule

import (
	"github.com/crosscourts/court-booking-service/internal/domain"
	getSchedule "github.com/crosscourts/court-booking-service/internal/usecase/get_schedule"
)

// SlotResponse HTTP модель слота сетки
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00:00"
	EndTime   string `json:"endTime"`   // "11:00:00"
	Label     string `json:"label,omitempty"`
	Booked    bool   `json:"booked"`
	BookingID *int64 `json:"bookingId,omitempty"`
}

// ScheduleResponse HTTP модель сетки слотов на день
type ScheduleResponse struct {
	CourtID int64          `json:"courtId"`
	Date    string         `json:"date"` // "2025-10-15"
	Custom  bool           `json:"custom"`
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Label:     slot.Label,
			Booked:    slot.Booked,
			BookingID: slot.BookingID,
		}
	}

	return &ScheduleResponse{
		CourtID: resp.CourtID,
		Date:    resp.Date.Format(domain.DateFormat),
		Custom:  resp.Custom,
		Slots:   slots,
	}
}
