package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var day = time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)

type stubDirectory struct {
	onShift map[domain.ShiftBucket][]int64
	err     error
	calls   int
}

func (s *stubDirectory) OnShift(_ context.Context, _ int64, _ time.Time, bucket domain.ShiftBucket) ([]int64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.onShift[bucket], nil
}

type stubAppointments struct {
	slots []domain.BusySlot
	err   error
	asked []int64
}

func (s *stubAppointments) BusySlots(_ context.Context, _ time.Time, staffIDs []int64) ([]domain.BusySlot, error) {
	s.asked = staffIDs
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.BusySlot
	for _, slot := range s.slots {
		for _, id := range staffIDs {
			if slot.StaffID == id {
				out = append(out, slot)
			}
		}
	}
	return out, nil
}

func TestResolveAvailability_ExcludesOverlapping(t *testing.T) {
	dir := &stubDirectory{onShift: map[domain.ShiftBucket][]int64{domain.ShiftMorning: {7}}}
	appts := &stubAppointments{slots: []domain.BusySlot{
		{AppointmentID: 1, StaffID: 7, StartTime: types.MustTimeString("09:00"), DurationMinutes: 60},
	}}
	r := NewResolver(dir, appts, logger.NewNop())

	busy, err := r.EligibleStaffIDs(context.Background(), 1, day, types.MustTimeString("09:30"), 30)
	require.NoError(t, err)
	assert.Empty(t, busy)

	free, err := r.EligibleStaffIDs(context.Background(), 1, day, types.MustTimeString("10:00"), 30)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, free)
}

func TestResolveAvailability_UsesMatchingBucket(t *testing.T) {
	dir := &stubDirectory{onShift: map[domain.ShiftBucket][]int64{
		domain.ShiftMorning:   {1},
		domain.ShiftAfternoon: {2},
	}}
	r := NewResolver(dir, &stubAppointments{}, logger.NewNop())

	ids, err := r.EligibleStaffIDs(context.Background(), 1, day, types.MustTimeString("12:00"), 60)

	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)
}

func TestResolveAvailability_DayLoadCountsAllCommitted(t *testing.T) {
	dir := &stubDirectory{onShift: map[domain.ShiftBucket][]int64{domain.ShiftMorning: {1, 2}}}
	appts := &stubAppointments{slots: []domain.BusySlot{
		{StaffID: 1, StartTime: types.MustTimeString("07:00"), DurationMinutes: 60},
		{StaffID: 1, StartTime: types.MustTimeString("14:00"), DurationMinutes: 60},
		{StaffID: 2, StartTime: types.MustTimeString("08:00"), DurationMinutes: 30},
	}}
	r := NewResolver(dir, appts, logger.NewNop())

	candidates, err := r.ResolveAvailability(context.Background(), 1, day, types.MustTimeString("10:00"), 45)

	require.NoError(t, err)
	assert.Equal(t, []Candidate{{StaffID: 1, DayLoad: 120}, {StaffID: 2, DayLoad: 30}}, candidates)

	chosen, err := SelectAssignee(candidates)
	require.NoError(t, err)
	assert.Equal(t, int64(2), chosen.StaffID)
}

func TestResolveAvailability_NobodyOnShift(t *testing.T) {
	appts := &stubAppointments{}
	r := NewResolver(&stubDirectory{}, appts, logger.NewNop())

	candidates, err := r.ResolveAvailability(context.Background(), 1, day, types.MustTimeString("19:00"), 30)

	require.NoError(t, err)
	assert.Empty(t, candidates)
	assert.Nil(t, appts.asked)
}

func TestResolveAvailability_DirectoryError(t *testing.T) {
	boom := errors.New("db down")
	r := NewResolver(&stubDirectory{err: boom}, &stubAppointments{}, logger.NewNop())

	_, err := r.ResolveAvailability(context.Background(), 1, day, types.MustTimeString("09:00"), 30)

	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, boom)
}

func TestDaySchedule_ManyStartsOneLoad(t *testing.T) {
	dir := &stubDirectory{onShift: map[domain.ShiftBucket][]int64{domain.ShiftMorning: {1}}}
	appts := &stubAppointments{slots: []domain.BusySlot{
		{StaffID: 1, StartTime: types.MustTimeString("09:00"), DurationMinutes: 60},
	}}
	r := NewResolver(dir, appts, logger.NewNop())

	schedule, err := r.LoadDay(context.Background(), 1, day, domain.ShiftMorning)
	require.NoError(t, err)

	assert.Len(t, schedule.Candidates(types.MustTimeString("08:00"), 60), 1)
	assert.Len(t, schedule.Candidates(types.MustTimeString("08:30"), 60), 0)
	assert.Len(t, schedule.Candidates(types.MustTimeString("10:00"), 60), 1)
	assert.Equal(t, 1, dir.calls)
}
