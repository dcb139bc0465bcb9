package review_shift

import (
	"context"

	reviewShifts "github.com/m04kA/SMC-SalonBooking/internal/usecase/review_shifts"
)

type ReviewShiftsUseCase interface {
	ApproveOne(ctx context.Context, req *reviewShifts.DecisionRequest) (*reviewShifts.ShiftResponse, error)
	RejectOne(ctx context.Context, req *reviewShifts.DecisionRequest) (*reviewShifts.ShiftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
