package submit_shift_request

import "time"

// Request модель заявки мастера на смену
type Request struct {
	StaffID  int64
	WorkDate time.Time
	Shift    string // MORNING / AFTERNOON / EVENING
}

// Response модель ответа с заявкой
type Response struct {
	ShiftID   int64
	StaffID   int64
	WorkDate  time.Time
	Shift     string
	Status    string
	Reopened  bool // заявка была отклонена раньше и подана заново
	CreatedAt time.Time
}
