package review_shift

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	reviewShifts "github.com/m04kA/SMC-SalonBooking/internal/usecase/review_shifts"
)

// ApproveBody HTTP request model; без branchId используется филиал из заявки
type ApproveBody struct {
	BranchID *int64 `json:"branchId,omitempty" validate:"omitempty,gt=0"`
}

// ShiftResponse HTTP response model
type ShiftResponse struct {
	ID         int64  `json:"id"`
	StaffID    int64  `json:"staffId"`
	WorkDate   string `json:"workDate"`
	Shift      string `json:"shift"`
	Status     string `json:"status"`
	BranchID   *int64 `json:"branchId,omitempty"`
	ApprovedBy *int64 `json:"approvedBy,omitempty"`
}

func FromUseCaseResponse(resp *reviewShifts.ShiftResponse) *ShiftResponse {
	return &ShiftResponse{
		ID:         resp.ShiftID,
		StaffID:    resp.StaffID,
		WorkDate:   resp.WorkDate.Format(domain.DateFormat),
		Shift:      resp.Shift,
		Status:     resp.Status,
		BranchID:   resp.BranchID,
		ApprovedBy: resp.ApprovedBy,
	}
}
