package domain

import "github.com/m04kA/SMC-SalonBooking/pkg/types"

// AvailableSlot represents a start time on the booking grid
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Bucket          ShiftBucket
	FreeStaff       int // staff who could take the booking at this start
	OnShift         int // staff holding an approved shift for the bucket
}

// IsFull returns true if nobody can take the slot
func (s *AvailableSlot) IsFull() bool {
	return s.FreeStaff <= 0
}

// IsPartiallyAvailable returns true if some but not all staff on shift are free
func (s *AvailableSlot) IsPartiallyAvailable() bool {
	return s.FreeStaff > 0 && s.FreeStaff < s.OnShift
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *AvailableSlot) OccupancyRate() float64 {
	if s.OnShift == 0 {
		return 0
	}
	occupied := s.OnShift - s.FreeStaff
	return float64(occupied) / float64(s.OnShift) * 100
}
