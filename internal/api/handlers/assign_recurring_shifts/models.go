package assign_recurring_shifts

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	assignRecurring "github.com/m04kA/SMC-SalonBooking/internal/usecase/assign_recurring_shifts"
)

// AssignRecurringBody HTTP request model
type AssignRecurringBody struct {
	StaffID   int64  `json:"staffId" validate:"required,gt=0"`
	BranchID  int64  `json:"branchId" validate:"required,gt=0"`
	Shift     string `json:"shift" validate:"required,oneof=MORNING AFTERNOON EVENING"`
	RRule     string `json:"rrule" validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

// AssignRecurringResponse HTTP response model
type AssignRecurringResponse struct {
	Created  []int64           `json:"created"`
	Approved []int64           `json:"approved"`
	Skipped  []SkippedResponse `json:"skipped"`
}

type SkippedResponse struct {
	Date    string `json:"date"`
	ShiftID int64  `json:"shiftId"`
	Status  string `json:"status"`
}

func (b *AssignRecurringBody) ToUseCaseRequest(adminID int64) (*assignRecurring.Request, error) {
	start, err := time.Parse(domain.DateFormat, b.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(domain.DateFormat, b.EndDate)
	if err != nil {
		return nil, err
	}

	return &assignRecurring.Request{
		AdminID:   adminID,
		StaffID:   b.StaffID,
		BranchID:  b.BranchID,
		Shift:     b.Shift,
		RRule:     b.RRule,
		StartDate: start,
		EndDate:   end,
	}, nil
}

func FromUseCaseResponse(resp *assignRecurring.Response) *AssignRecurringResponse {
	out := &AssignRecurringResponse{
		Created:  append([]int64{}, resp.Created...),
		Approved: append([]int64{}, resp.Approved...),
		Skipped:  make([]SkippedResponse, len(resp.Skipped)),
	}
	for i, s := range resp.Skipped {
		out.Skipped[i] = SkippedResponse{Date: s.Date.Format(domain.DateFormat), ShiftID: s.ShiftID, Status: s.Status}
	}
	return out
}
