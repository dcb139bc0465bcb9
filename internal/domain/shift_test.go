package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func TestClassifyShift_Boundaries(t *testing.T) {
	cases := map[string]ShiftBucket{
		"00:00": ShiftEvening,
		"05:59": ShiftEvening,
		"06:00": ShiftMorning,
		"11:59": ShiftMorning,
		"12:00": ShiftAfternoon,
		"17:59": ShiftAfternoon,
		"18:00": ShiftEvening,
		"23:59": ShiftEvening,
	}
	for in, want := range cases {
		assert.Equal(t, want, ClassifyShift(types.MustTimeString(in)), in)
	}
}

func TestClassifyShift_PartitionsTheDay(t *testing.T) {
	counts := map[ShiftBucket]int{}
	for m := 0; m < 24*60; m++ {
		ts, err := types.FromMinutes(m)
		require.NoError(t, err)

		b := ClassifyShift(ts)
		require.True(t, b.IsValid(), ts.String())
		counts[b]++
	}

	assert.Equal(t, 360, counts[ShiftMorning])
	assert.Equal(t, 360, counts[ShiftAfternoon])
	assert.Equal(t, 720, counts[ShiftEvening])
}

func TestParseShiftBucket(t *testing.T) {
	b, err := ParseShiftBucket("afternoon")
	require.NoError(t, err)
	assert.Equal(t, ShiftAfternoon, b)

	_, err = ParseShiftBucket("Aft")
	assert.Error(t, err)
}

func TestShift_ApproveReject(t *testing.T) {
	s := &Shift{StaffID: 1, Status: ShiftPending}
	assert.True(t, s.IsPending())
	assert.True(t, s.BlocksResubmission())

	s.Approve(3, 99)
	assert.Equal(t, ShiftApproved, s.Status)
	require.NotNil(t, s.BranchID)
	assert.Equal(t, int64(3), *s.BranchID)
	assert.Equal(t, int64(99), *s.ApprovedBy)

	r := &Shift{StaffID: 1, Status: ShiftPending, BranchID: ptrTo(int64(3))}
	r.Reject(99)
	assert.Equal(t, ShiftRejected, r.Status)
	assert.Nil(t, r.BranchID)
	assert.False(t, r.BlocksResubmission())
}

func TestSelfScheduleWindow(t *testing.T) {
	// среда
	now := time.Date(2026, 10, 21, 15, 30, 0, 0, time.UTC)

	start, end := SelfScheduleWindow(now)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, time.Sunday, end.Weekday())
}

func TestWeekStart_Sunday(t *testing.T) {
	sunday := time.Date(2026, 10, 25, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), WeekStart(sunday))
}

func ptrTo[T any](v T) *T {
	return &v
}

func TestSlotLockKey(t *testing.T) {
	date := time.Date(2026, 10, 21, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, "slot:2:2026-10-21:MORNING", SlotLockKey(2, date, ShiftMorning))
}
