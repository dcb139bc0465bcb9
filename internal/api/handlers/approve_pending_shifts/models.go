package approve_pending_shifts

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	reviewShifts "github.com/m04kA/SMC-SalonBooking/internal/usecase/review_shifts"
)

// ApprovePendingBody HTTP request model
type ApprovePendingBody struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
	BranchID  *int64 `json:"branchId,omitempty" validate:"omitempty,gt=0"`
}

// ApprovePendingResponse HTTP response model
type ApprovePendingResponse struct {
	Approved int     `json:"approved"`
	ShiftIDs []int64 `json:"shiftIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (b *ApprovePendingBody) ToUseCaseRequest(adminID int64) (*reviewShifts.BulkApproveRequest, error) {
	start, err := time.Parse(domain.DateFormat, b.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(domain.DateFormat, b.EndDate)
	if err != nil {
		return nil, err
	}

	return &reviewShifts.BulkApproveRequest{
		AdminID:   adminID,
		StartDate: start,
		EndDate:   end,
		BranchID:  b.BranchID,
	}, nil
}

func FromUseCaseResponse(resp *reviewShifts.BulkApproveResponse) *ApprovePendingResponse {
	ids := resp.ShiftIDs
	if ids == nil {
		ids = []int64{}
	}
	return &ApprovePendingResponse{Approved: resp.Approved, ShiftIDs: ids}
}
