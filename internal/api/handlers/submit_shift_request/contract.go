package submit_shift_request

import (
	"context"

	submitShiftRequest "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_shift_request"
)

type SubmitShiftRequestUseCase interface {
	Execute(ctx context.Context, req *submitShiftRequest.Request) (*submitShiftRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
