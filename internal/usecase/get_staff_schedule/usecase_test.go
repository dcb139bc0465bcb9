package get_staff_schedule

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

func TestExecute_GroupsWeekByDay(t *testing.T) {
	store := testfixtures.NewStore()
	staff := store.AddUser(domain.RoleStaff, "mai")
	branch := store.AddBranch("Center")
	// Date(-2) is Monday, Date(4) is Sunday
	evening := store.AddShift(domain.Shift{StaffID: staff, WorkDate: testfixtures.Date(-2), Bucket: domain.ShiftEvening, Status: domain.ShiftPending})
	morning := store.ApproveShift(staff, branch, testfixtures.Date(-2), domain.ShiftMorning)
	sunday := store.AddShift(domain.Shift{StaffID: staff, WorkDate: testfixtures.Date(4), Bucket: domain.ShiftAfternoon, Status: domain.ShiftRejected})
	store.ApproveShift(staff, branch, testfixtures.Date(5), domain.ShiftMorning) // next week

	uc := NewUseCase(store.Staff(), store.Shifts(), time.UTC, logger.NewNop())
	uc.timeProvider = testfixtures.NewClock(testfixtures.ReferenceTime)

	resp, err := uc.Execute(context.Background(), &Request{RequesterID: staff, StaffID: staff})

	require.NoError(t, err)
	assert.Equal(t, testfixtures.Date(-2), resp.WeekStart)
	assert.Equal(t, testfixtures.Date(4), resp.WeekEnd)
	require.Len(t, resp.Days, 7)

	monday := resp.Days[0].Shifts
	require.Len(t, monday, 2)
	assert.Equal(t, morning, monday[0].ShiftID)
	assert.Equal(t, "APPROVED", monday[0].Status)
	assert.Equal(t, evening, monday[1].ShiftID)

	require.Len(t, resp.Days[6].Shifts, 1)
	assert.Equal(t, sunday, resp.Days[6].Shifts[0].ShiftID)
	assert.Equal(t, "REJECTED", resp.Days[6].Shifts[0].Status)

	for _, day := range resp.Days[1:6] {
		assert.Empty(t, day.Shifts)
	}
}

func TestExecute_ExplicitWeek(t *testing.T) {
	store := testfixtures.NewStore()
	staff := store.AddUser(domain.RoleStaff, "mai")
	admin := store.AddUser(domain.RoleAdmin, "boss")
	uc := NewUseCase(store.Staff(), store.Shifts(), time.UTC, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{RequesterID: admin, StaffID: staff, Start: testfixtures.Date(9)})

	require.NoError(t, err)
	assert.Equal(t, testfixtures.Date(5), resp.WeekStart)
}

func TestExecute_Access(t *testing.T) {
	store := testfixtures.NewStore()
	staff := store.AddUser(domain.RoleStaff, "mai")
	colleague := store.AddUser(domain.RoleStaff, "hoa")
	customer := store.AddUser(domain.RoleCustomer, "an")
	uc := NewUseCase(store.Staff(), store.Shifts(), time.UTC, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{RequesterID: colleague, StaffID: staff})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = uc.Execute(context.Background(), &Request{RequesterID: customer, StaffID: customer})
	assert.ErrorIs(t, err, ErrNotStaff)

	_, err = uc.Execute(context.Background(), &Request{RequesterID: 404, StaffID: 404})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_DefaultWeekUsesSalonCalendar(t *testing.T) {
	store := testfixtures.NewStore()
	staff := store.AddUser(domain.RoleStaff, "mai")
	uc := NewUseCase(store.Staff(), store.Shifts(), testfixtures.SalonZone, logger.NewNop())
	// Sunday 20:00 UTC is Monday 03:00 in the salon
	uc.timeProvider = testfixtures.NewClock(time.Date(2026, time.October, 25, 20, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{RequesterID: staff, StaffID: staff})

	require.NoError(t, err)
	assert.Equal(t, testfixtures.Date(5), resp.WeekStart)
	assert.Equal(t, testfixtures.Date(11), resp.WeekEnd)
}
