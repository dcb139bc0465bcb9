package get_staff_schedule

import (
	"context"

	getStaffSchedule "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_staff_schedule"
)

type GetStaffScheduleUseCase interface {
	Execute(ctx context.Context, req *getStaffSchedule.Request) (*getStaffSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
