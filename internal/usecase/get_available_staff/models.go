package get_available_staff

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса свободных мастеров
type Request struct {
	BranchID        int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int // 0 - длительность по умолчанию (60 минут)
}

// Response модель ответа
type Response struct {
	BranchID        int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Shift           string
	Staff           []StaffCandidate
	SuggestedStaff  *int64 // мастер, которого назначит запись; nil если свободных нет
}

// StaffCandidate свободный мастер и его загрузка за день
type StaffCandidate struct {
	StaffID int64
	DayLoad int // минуты активных записей за день
}
