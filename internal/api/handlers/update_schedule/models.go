package update_schedule

import (
	"time"

	"github.com/crosscourts/court-booking-service/internal/domain"
	updateSchedule "github.com/crosscourts/court-booking-service/internal/usecase/update_schedule"
)

// SlotInput HTTP модель одного слота предлагаемой сетки
type SlotInput struct {
	StartTime string `json:"startTime"` // "10:00" или "10:00:00"
	EndTime   string `json:"endTime"`
	Label     string `json:"label,omitempty"`
}

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Date  string      `json:"date"` // "2025-10-15"
	Slots []SlotInput `json:"slots"`
}

// SlotResponse HTTP модель сохранённого слота
type SlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label,omitempty"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	CourtID int64          `json:"courtId"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateScheduleRequest) ToUseCaseRequest(courtID int64) (*updateSchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slots := make([]updateSchedule.SlotInput, len(r.Slots))
	for i, slot := range r.Slots {
		slots[i] = updateSchedule.SlotInput{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Label:     slot.Label,
		}
	}

	return &updateSchedule.Request{
		CourtID: courtID,
		Date:    date,
		Slots:   slots,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSchedule.Response) *ScheduleResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			ID:        slot.ID,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Label:     slot.Label,
		}
	}

	return &ScheduleResponse{
		CourtID: resp.CourtID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}
