package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "PENDING"
	StatusConfirmed  AppointmentStatus = "CONFIRMED"
	StatusInProgress AppointmentStatus = "IN_PROGRESS"
	StatusDone       AppointmentStatus = "DONE"
	StatusCanceled   AppointmentStatus = "CANCELED"
	StatusArrived    AppointmentStatus = "ARRIVED"
	StatusOngoing    AppointmentStatus = "ONGOING"
)

// CommittedStatuses statuses that still occupy staff time
var CommittedStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}

// IsValid returns true if s is a known status
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusDone, StatusCanceled, StatusArrived, StatusOngoing:
		return true
	}
	return false
}

// IsCommitted returns true if an appointment in this status blocks the assigned staff
func (s AppointmentStatus) IsCommitted() bool {
	for _, c := range CommittedStatuses {
		if s == c {
			return true
		}
	}
	return false
}

// Appointment represents a booked service slot
type Appointment struct {
	ID              int64
	CustomerID      int64
	BranchID        int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus
	TotalPrice      decimal.Decimal // cached, see RecalcTotal
	Note            *string

	Services []ServiceLine
	Staff    []StaffLine

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceLine one service within an appointment, price snapshotted at booking time
type ServiceLine struct {
	ID            int64
	AppointmentID int64
	ServiceID     int64
	Quantity      int
	UnitPrice     decimal.Decimal

	// ServiceDuration duration of the referenced service, nil if the service has none
	ServiceDuration *int
}

// LineTotal quantity × unit price
func (l ServiceLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// StaffLine assignment of one staff member to an appointment
type StaffLine struct {
	ID            int64
	AppointmentID int64
	StaffID       int64
}

// RecalcTotal recomputes the cached total from the service lines and returns it.
// Must be called after every line mutation.
func (a *Appointment) RecalcTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range a.Services {
		total = total.Add(l.LineTotal())
	}
	a.TotalPrice = total
	return total
}

// EffectiveDuration minutes the appointment occupies its staff.
// Sum of the service durations (60 for a service without one); the stored duration when there are no lines.
func (a *Appointment) EffectiveDuration() int {
	if len(a.Services) == 0 {
		return a.DurationMinutes
	}
	total := 0
	for _, l := range a.Services {
		total += ptr.Deref(l.ServiceDuration, DefaultServiceDurationMinutes)
	}
	return total
}

// HasStaff returns true if staffID is assigned to the appointment
func (a *Appointment) HasStaff(staffID int64) bool {
	for _, s := range a.Staff {
		if s.StaffID == staffID {
			return true
		}
	}
	return false
}

// StartsAt start of the appointment in loc
func (a *Appointment) StartsAt(loc *time.Location) time.Time {
	y, m, d := a.Date.Date()
	return a.StartTime.On(time.Date(y, m, d, 0, 0, 0, 0, loc))
}

// CanBeCancelled returns true if the customer may still cancel at now:
// status is Pending or Confirmed and at least notice remains before the start.
func (a *Appointment) CanBeCancelled(now time.Time, notice time.Duration, loc *time.Location) bool {
	if a.Status != StatusPending && a.Status != StatusConfirmed {
		return false
	}
	return a.StartsAt(loc).Sub(now) >= notice
}

// BookingCode human readable reference shown to the customer
func (a *Appointment) BookingCode() string {
	return fmt.Sprintf("BK%06d", a.ID)
}

// BusySlot committed appointment of one staff member on a date
type BusySlot struct {
	AppointmentID   int64
	StaffID         int64
	StartTime       types.TimeString
	DurationMinutes int
}

// AppointmentFilter фильтр для списка записей
type AppointmentFilter struct {
	CustomerID *int64
	StaffID    *int64
	BranchID   *int64
	Date       *time.Time
	Status     *AppointmentStatus
}
