package approve_pending_shifts

import (
	"context"

	reviewShifts "github.com/m04kA/SMC-SalonBooking/internal/usecase/review_shifts"
)

type ApprovePendingUseCase interface {
	ApprovePending(ctx context.Context, req *reviewShifts.BulkApproveRequest) (*reviewShifts.BulkApproveResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
