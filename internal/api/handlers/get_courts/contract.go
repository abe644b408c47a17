package get_courts

import (
	"context"

	"github.com/crosscourts/court-booking-service/internal/service/courts/models"
)

type CourtService interface {
	List(ctx context.Context, category *string) (*models.CourtListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
