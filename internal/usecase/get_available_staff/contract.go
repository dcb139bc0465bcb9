package get_available_staff

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/scheduling"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// BranchRepository интерфейс чтения филиалов
type BranchRepository interface {
	GetBranch(ctx context.Context, id int64) (*domain.Branch, error)
}

// AvailabilityResolver подбор свободных мастеров
type AvailabilityResolver interface {
	ResolveAvailability(ctx context.Context, branchID int64, date time.Time, start types.TimeString, durationMinutes int) ([]scheduling.Candidate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
