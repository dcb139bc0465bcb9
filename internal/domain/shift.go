package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// ShiftBucket coarse time-of-day classification of a working shift
type ShiftBucket string

const (
	ShiftMorning   ShiftBucket = "MORNING"
	ShiftAfternoon ShiftBucket = "AFTERNOON"
	ShiftEvening   ShiftBucket = "EVENING"
)

// ShiftBuckets all buckets in chronological order
var ShiftBuckets = []ShiftBucket{ShiftMorning, ShiftAfternoon, ShiftEvening}

// Bucket boundaries in minutes since midnight
const (
	morningStartMinutes   = 6 * 60
	afternoonStartMinutes = 12 * 60
	eveningStartMinutes   = 18 * 60
)

// ClassifyShift maps a clock time to its shift bucket.
// [06:00, 12:00) is MORNING, [12:00, 18:00) is AFTERNOON, everything else is EVENING.
func ClassifyShift(t types.TimeString) ShiftBucket {
	m := t.Minutes()
	switch {
	case m >= morningStartMinutes && m < afternoonStartMinutes:
		return ShiftMorning
	case m >= afternoonStartMinutes && m < eveningStartMinutes:
		return ShiftAfternoon
	default:
		return ShiftEvening
	}
}

// IsValid returns true if b is one of the known buckets
func (b ShiftBucket) IsValid() bool {
	switch b {
	case ShiftMorning, ShiftAfternoon, ShiftEvening:
		return true
	}
	return false
}

// ParseShiftBucket accepts the exact bucket names, case-insensitive
func ParseShiftBucket(s string) (ShiftBucket, error) {
	b := ShiftBucket(strings.ToUpper(strings.TrimSpace(s)))
	if !b.IsValid() {
		return "", fmt.Errorf("unknown shift bucket %q", s)
	}
	return b, nil
}

// ShiftStatus approval state of a shift record
type ShiftStatus string

const (
	ShiftPending  ShiftStatus = "PENDING"
	ShiftApproved ShiftStatus = "APPROVED"
	ShiftRejected ShiftStatus = "REJECTED"
)

// Shift one staff member's claim to work a bucket on a calendar date
type Shift struct {
	ID         int64
	StaffID    int64
	WorkDate   time.Time
	Bucket     ShiftBucket
	Status     ShiftStatus
	BranchID   *int64 // set only once approved
	ApprovedBy *int64
	CreatedAt  time.Time
}

// IsPending returns true if the record still awaits an administrator decision
func (s *Shift) IsPending() bool {
	return s.Status == ShiftPending
}

// BlocksResubmission returns true if a new request for the same triple must be refused
func (s *Shift) BlocksResubmission() bool {
	return s.Status == ShiftPending || s.Status == ShiftApproved
}

// Approve moves a pending record to Approved at branchID
func (s *Shift) Approve(branchID, approverID int64) {
	s.Status = ShiftApproved
	s.BranchID = &branchID
	s.ApprovedBy = &approverID
}

// Reject moves a pending record to Rejected and clears its branch
func (s *Shift) Reject(approverID int64) {
	s.Status = ShiftRejected
	s.BranchID = nil
	s.ApprovedBy = &approverID
}

// ShiftKey identifies the (staff, date, bucket) triple
type ShiftKey struct {
	StaffID  int64
	WorkDate time.Time
	Bucket   ShiftBucket
}

// Key returns the uniqueness triple of the record
func (s *Shift) Key() ShiftKey {
	return ShiftKey{StaffID: s.StaffID, WorkDate: DateOnly(s.WorkDate), Bucket: s.Bucket}
}

// ShiftFilter фильтр для выборки смен
type ShiftFilter struct {
	StaffID   *int64
	BranchID  *int64
	Status    *ShiftStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// SelfScheduleWindow returns the inclusive date range staff may request shifts for:
// Monday of the current week through Sunday of the next week.
func SelfScheduleWindow(now time.Time) (start, end time.Time) {
	start = WeekStart(now)
	end = start.AddDate(0, 0, 13)
	return start, end
}

// WeekStart returns Monday of the week containing t (date only)
func WeekStart(t time.Time) time.Time {
	d := DateOnly(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// DateOnly drops the clock part and normalizes to UTC midnight of the same calendar date
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SlotLockKey key serializing bookings of one branch, date and bucket
func SlotLockKey(branchID int64, date time.Time, bucket ShiftBucket) string {
	return fmt.Sprintf("slot:%d:%s:%s", branchID, DateOnly(date).Format(DateFormat), bucket)
}
