package submit_shift_request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/testfixtures"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

func newUseCase(store *testfixtures.Store) *UseCase {
	uc := NewUseCase(store.Staff(), store.Shifts(), store, time.UTC, logger.NewNop())
	uc.timeProvider = testfixtures.NewClock(testfixtures.ReferenceTime)
	return uc
}

func TestExecute_CreatesPendingRequest(t *testing.T) {
	store := testfixtures.NewStore()
	staff := store.AddUser(domain.RoleStaff, "mai")
	uc := newUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:  staff,
		WorkDate: testfixtures.Date(3),
		Shift:    "afternoon",
	})

	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "AFTERNOON", resp.Shift)
	assert.False(t, resp.Reopened)

	stored, ok := store.Shift(resp.ShiftID)
	require.True(t, ok)
	assert.Equal(t, domain.ShiftPending, stored.Status)
	assert.Nil(t, stored.BranchID)
}

func TestExecute_Window(t *testing.T) {
	store := testfixtures.NewStore()
	staff := store.AddUser(domain.RoleStaff, "mai")
	uc := newUseCase(store)

	// ReferenceTime is Wednesday 2026-10-21: the window is Mon 10-19 .. Sun 11-01
	tests := []struct {
		name string
		days int
		want error
	}{
		{"monday of this week", -2, nil},
		{"sunday before", -3, ErrOutsideWindow},
		{"sunday of next week", 11, nil},
		{"monday after next", 12, ErrOutsideWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				StaffID:  staff,
				WorkDate: testfixtures.Date(tt.days),
				Shift:    "MORNING",
			})
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestExecute_DuplicateRequest(t *testing.T) {
	for _, status := range []domain.ShiftStatus{domain.ShiftPending, domain.ShiftApproved} {
		t.Run(string(status), func(t *testing.T) {
			store := testfixtures.NewStore()
			staff := store.AddUser(domain.RoleStaff, "mai")
			store.AddShift(domain.Shift{
				StaffID: staff, WorkDate: testfixtures.Date(1), Bucket: domain.ShiftEvening, Status: status,
			})
			before := store.Counts()

			_, err := newUseCase(store).Execute(context.Background(), &Request{
				StaffID: staff, WorkDate: testfixtures.Date(1), Shift: "EVENING",
			})

			assert.ErrorIs(t, err, ErrDuplicateRequest)
			assert.Equal(t, before, store.Counts())
		})
	}
}

func TestExecute_ReopensRejectedRequest(t *testing.T) {
	store := testfixtures.NewStore()
	staff := store.AddUser(domain.RoleStaff, "mai")
	admin := store.AddUser(domain.RoleAdmin, "boss")
	rejected := store.AddShift(domain.Shift{
		StaffID: staff, WorkDate: testfixtures.Date(1), Bucket: domain.ShiftMorning,
		Status: domain.ShiftRejected, ApprovedBy: &admin,
	})

	resp, err := newUseCase(store).Execute(context.Background(), &Request{
		StaffID: staff, WorkDate: testfixtures.Date(1), Shift: "MORNING",
	})

	require.NoError(t, err)
	assert.True(t, resp.Reopened)
	assert.Equal(t, rejected, resp.ShiftID)
	assert.Equal(t, 1, store.Counts().Shifts)

	stored, _ := store.Shift(rejected)
	assert.Equal(t, domain.ShiftPending, stored.Status)
	assert.Nil(t, stored.ApprovedBy)
}

func TestExecute_OnlyStaff(t *testing.T) {
	store := testfixtures.NewStore()
	customer := store.AddUser(domain.RoleCustomer, "an")
	uc := newUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{StaffID: customer, WorkDate: testfixtures.Date(1), Shift: "MORNING"})
	assert.ErrorIs(t, err, ErrNotStaff)

	_, err = uc.Execute(context.Background(), &Request{StaffID: 404, WorkDate: testfixtures.Date(1), Shift: "MORNING"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	store := testfixtures.NewStore()
	staff := store.AddUser(domain.RoleStaff, "mai")
	uc := newUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{StaffID: staff, WorkDate: testfixtures.Date(1), Shift: "NIGHT"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StaffID: staff, Shift: "MORNING"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_WindowFollowsSalonCalendar(t *testing.T) {
	store := testfixtures.NewStore()
	staff := store.AddUser(domain.RoleStaff, "mai")
	uc := NewUseCase(store.Staff(), store.Shifts(), store, testfixtures.SalonZone, logger.NewNop())
	// Sunday 20:00 UTC is already Monday 2026-10-26 03:00 in the salon: the window is 10-26 .. 11-08
	uc.timeProvider = testfixtures.NewClock(time.Date(2026, time.October, 25, 20, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		days int
		want error
	}{
		{"monday of the new week", 5, nil},
		{"sunday of next week", 18, nil},
		{"monday of the previous week", -2, ErrOutsideWindow},
		{"sunday just ended", 4, ErrOutsideWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				StaffID:  staff,
				WorkDate: testfixtures.Date(tt.days),
				Shift:    "EVENING",
			})
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
