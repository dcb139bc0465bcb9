package review_shifts

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// UserRepository интерфейс чтения пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// BranchRepository интерфейс чтения филиалов
type BranchRepository interface {
	GetBranch(ctx context.Context, id int64) (*domain.Branch, error)
}

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	List(ctx context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error)
	Update(ctx context.Context, s *domain.Shift) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики решений по заявкам
type Metrics interface {
	AddShiftDecisions(decision string, count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
