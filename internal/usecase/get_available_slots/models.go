package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	BranchID  int64     // ID филиала
	ServiceID int64     // ID услуги (определяет длительность)
	Date      time.Time // Дата (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date      time.Time
	BranchID  int64
	ServiceID int64
	Slots     []Slot
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность услуги в минутах
	Shift           string           // MORNING / AFTERNOON / EVENING
	FreeStaff       int              // Сколько мастеров могут взять запись
	OnShift         int              // Сколько мастеров на смене
	OccupancyRate   float64          // Процент занятых мастеров смены
}
