package get_available_staff

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getAvailableStaff "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_staff"
)

// AvailableStaffResponse HTTP response model
type AvailableStaffResponse struct {
	BranchID        int64               `json:"branchId"`
	Date            string              `json:"date"`
	StartTime       string              `json:"startTime"`
	DurationMinutes int                 `json:"durationMinutes"`
	Shift           string              `json:"shift"`
	Staff           []StaffItemResponse `json:"staff"`
	SuggestedStaff  *int64              `json:"suggestedStaffId,omitempty"`
}

type StaffItemResponse struct {
	StaffID int64 `json:"staffId"`
	DayLoad int   `json:"dayLoadMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableStaff.Response) *AvailableStaffResponse {
	staff := make([]StaffItemResponse, len(resp.Staff))
	for i, c := range resp.Staff {
		staff[i] = StaffItemResponse{StaffID: c.StaffID, DayLoad: c.DayLoad}
	}

	return &AvailableStaffResponse{
		BranchID:        resp.BranchID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Shift:           resp.Shift,
		Staff:           staff,
		SuggestedStaff:  resp.SuggestedStaff,
	}
}
