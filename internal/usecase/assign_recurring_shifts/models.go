package assign_recurring_shifts

import "time"

// Request назначение мастеру повторяющихся смен
type Request struct {
	AdminID   int64
	StaffID   int64
	BranchID  int64
	Shift     string    // MORNING / AFTERNOON / EVENING
	RRule     string    // например "FREQ=WEEKLY;BYDAY=MO,WE,FR"
	StartDate time.Time // первая дата (DTSTART)
	EndDate   time.Time // последняя дата включительно
}

// Response итог назначения
type Response struct {
	Created  []int64       // новые подтвержденные смены
	Approved []int64       // заявки PENDING, подтвержденные по правилу
	Skipped  []SkippedDate // даты, где уже есть решенная запись
}

// SkippedDate дата, которую правило не тронуло
type SkippedDate struct {
	Date    time.Time
	ShiftID int64
	Status  string
}
