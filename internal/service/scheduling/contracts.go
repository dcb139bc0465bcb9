package scheduling

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// StaffDirectory источник мастеров с подтвержденной сменой
type StaffDirectory interface {
	OnShift(ctx context.Context, branchID int64, date time.Time, bucket domain.ShiftBucket) ([]int64, error)
}

// AppointmentReader чтение занятости мастеров
type AppointmentReader interface {
	BusySlots(ctx context.Context, date time.Time, staffIDs []int64) ([]domain.BusySlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
