package get_staff_schedule

import "time"

// Request модель запроса расписания мастера на неделю
type Request struct {
	RequesterID int64
	StaffID     int64
	Start       time.Time // любой день недели; пусто - текущая неделя
}

// Response неделя с понедельника по воскресенье
type Response struct {
	StaffID   int64
	WeekStart time.Time
	WeekEnd   time.Time
	Days      []Day // всегда 7 дней
}

// Day смены мастера в один день
type Day struct {
	Date   time.Time
	Shifts []ShiftEntry
}

// ShiftEntry одна запись расписания
type ShiftEntry struct {
	ShiftID  int64
	Shift    string
	Status   string
	BranchID *int64
}
