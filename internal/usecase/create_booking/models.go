package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID    int64                // ID клиента
	ServiceID     int64                // ID услуги
	BranchID      int64                // ID филиала
	Date          time.Time            // Дата записи (без времени)
	StartTime     types.TimeString     // Время начала (например, "10:00")
	Note          *string              // Комментарий клиента (опционально)
	PaymentMethod domain.PaymentMethod // ONLINE или CASH, пусто - ONLINE
}

// Response модель ответа с созданной записью
type Response struct {
	AppointmentID   int64
	BookingCode     string
	CustomerID      int64
	BranchID        int64
	ServiceID       int64
	StaffID         int64 // назначенный мастер
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	TotalPrice      decimal.Decimal
	Note            *string

	PaymentID     int64
	PaymentMethod string
	PaymentStatus string

	CreatedAt time.Time
}
