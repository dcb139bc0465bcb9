package get_staff_schedule

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getStaffSchedule "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_staff_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	StaffID   int64         `json:"staffId"`
	WeekStart string        `json:"weekStart"`
	WeekEnd   string        `json:"weekEnd"`
	Days      []DayResponse `json:"days"`
}

type DayResponse struct {
	Date   string          `json:"date"`
	Shifts []ShiftResponse `json:"shifts"`
}

type ShiftResponse struct {
	ID       int64  `json:"id"`
	Shift    string `json:"shift"`
	Status   string `json:"status"`
	BranchID *int64 `json:"branchId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getStaffSchedule.Response) *ScheduleResponse {
	days := make([]DayResponse, len(resp.Days))
	for i, d := range resp.Days {
		shifts := make([]ShiftResponse, len(d.Shifts))
		for j, s := range d.Shifts {
			shifts[j] = ShiftResponse{ID: s.ShiftID, Shift: s.Shift, Status: s.Status, BranchID: s.BranchID}
		}
		days[i] = DayResponse{Date: d.Date.Format(domain.DateFormat), Shifts: shifts}
	}

	return &ScheduleResponse{
		StaffID:   resp.StaffID,
		WeekStart: resp.WeekStart.Format(domain.DateFormat),
		WeekEnd:   resp.WeekEnd.Format(domain.DateFormat),
		Days:      days,
	}
}
