package confirm_cancellation

import (
	"context"

	confirmCancellation "github.com/crosscourts/court-booking-service/internal/usecase/confirm_cancellation"
)

type ConfirmCancellationUseCase interface {
	Execute(ctx context.Context, req *confirmCancellation.Request) (*confirmCancellation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
