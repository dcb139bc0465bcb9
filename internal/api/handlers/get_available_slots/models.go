package get_available_slots

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string         `json:"date"`
	BranchID  int64          `json:"branchId"`
	ServiceID int64          `json:"serviceId"`
	Slots     []SlotResponse `json:"slots"`
}

// SlotResponse HTTP response model для одного слота
type SlotResponse struct {
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Shift           string  `json:"shift"`
	FreeStaff       int     `json:"freeStaff"`
	OnShift         int     `json:"onShift"`
	OccupancyRate   float64 `json:"occupancyRate"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
			Shift:           s.Shift,
			FreeStaff:       s.FreeStaff,
			OnShift:         s.OnShift,
			OccupancyRate:   s.OccupancyRate,
		}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		BranchID:  resp.BranchID,
		ServiceID: resp.ServiceID,
		Slots:     slots,
	}
}
