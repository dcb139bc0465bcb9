package assign_recurring_shifts

import (
	"context"

	assignRecurring "github.com/m04kA/SMC-SalonBooking/internal/usecase/assign_recurring_shifts"
)

type AssignRecurringShiftsUseCase interface {
	Execute(ctx context.Context, req *assignRecurring.Request) (*assignRecurring.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
