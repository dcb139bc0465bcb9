package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/scheduling"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// CatalogRepository интерфейс репозитория услуг и филиалов
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetBranch(ctx context.Context, id int64) (*domain.Branch, error)
}

// DayLoader загрузка смен и занятости мастеров на день
type DayLoader interface {
	// LoadDay возвращает мастеров на смене и их активные записи
	LoadDay(ctx context.Context, branchID int64, date time.Time, bucket domain.ShiftBucket) (*scheduling.DaySchedule, error)
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

// WorkingHours часы работы салона и шаг сетки слотов
type WorkingHours struct {
	Open        types.TimeString
	Close       types.TimeString
	StepMinutes int
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
