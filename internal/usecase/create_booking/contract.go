package create_booking

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/scheduling"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// CatalogRepository интерфейс чтения услуг и филиалов
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetBranch(ctx context.Context, id int64) (*domain.Branch, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	LockSlot(ctx context.Context, branchID int64, date time.Time, bucket domain.ShiftBucket) error
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	AddServiceLine(ctx context.Context, line *domain.ServiceLine) error
	AddStaffLine(ctx context.Context, line *domain.StaffLine) error
	RecalcTotal(ctx context.Context, appointmentID int64) (decimal.Decimal, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
}

// AvailabilityResolver подбор свободных мастеров
type AvailabilityResolver interface {
	ResolveAvailability(ctx context.Context, branchID int64, date time.Time, start types.TimeString, durationMinutes int) ([]scheduling.Candidate, error)
}

// SlotLocker блокировка слота внутри процесса
type SlotLocker interface {
	Lock(key string) (unlock func())
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики результатов бронирования
type Metrics interface {
	IncBooking(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
