package submit_shift_request

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	submitShiftRequest "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_shift_request"
)

// ShiftRequestBody HTTP request model
type ShiftRequestBody struct {
	WorkDate string `json:"workDate" validate:"required"`
	Shift    string `json:"shift" validate:"required,oneof=MORNING AFTERNOON EVENING"`
}

// ShiftRequestResponse HTTP response model
type ShiftRequestResponse struct {
	ID        int64  `json:"id"`
	StaffID   int64  `json:"staffId"`
	WorkDate  string `json:"workDate"`
	Shift     string `json:"shift"`
	Status    string `json:"status"`
	Reopened  bool   `json:"reopened"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (b *ShiftRequestBody) ToUseCaseRequest(staffID int64) (*submitShiftRequest.Request, error) {
	workDate, err := time.Parse(domain.DateFormat, b.WorkDate)
	if err != nil {
		return nil, err
	}

	return &submitShiftRequest.Request{
		StaffID:  staffID,
		WorkDate: workDate,
		Shift:    b.Shift,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitShiftRequest.Response) *ShiftRequestResponse {
	return &ShiftRequestResponse{
		ID:        resp.ShiftID,
		StaffID:   resp.StaffID,
		WorkDate:  resp.WorkDate.Format(domain.DateFormat),
		Shift:     resp.Shift,
		Status:    resp.Status,
		Reopened:  resp.Reopened,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
