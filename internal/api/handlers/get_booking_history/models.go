package get_booking_history

import (
	"net/url"
	"strconv"
	"time"

	"github.com/crosscourts/court-booking-service/internal/domain"
	"github.com/crosscourts/court-booking-service/internal/service/bookings/models"
)

// parseQuery разбирает query параметры фильтрации истории бронирований
//
// Поддерживаемые параметры:
// - date=YYYY-MM-DD           конкретный день
// - startDate / endDate       период
// - status=confirmed          фильтр по статусу
// - includeCancelled=true     включить отменённые
func parseQuery(courtID int64, query url.Values) (*models.GetCourtBookingsRequest, error) {
	req := &models.GetCourtBookingsRequest{CourtID: courtID}

	if value := query.Get("date"); value != "" {
		date, err := time.Parse(domain.DateFormat, value)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if value := query.Get("startDate"); value != "" {
		date, err := time.Parse(domain.DateFormat, value)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
	}

	if value := query.Get("endDate"); value != "" {
		date, err := time.Parse(domain.DateFormat, value)
		if err != nil {
			return nil, err
		}
		req.EndDate = &date
	}

	if value := query.Get("status"); value != "" {
		req.Status = &value
	}

	if value := query.Get("includeCancelled"); value != "" {
		includeCancelled, err := strconv.ParseBool(value)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
