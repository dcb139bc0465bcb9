package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/scheduling"
	"github.com/m04kA/SMC-SalonBooking/internal/testfixtures"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func newUseCase(store *testfixtures.Store, hours WorkingHours) *UseCase {
	resolver := scheduling.NewResolver(store.Staff(), store.Appointments(), logger.NewNop())
	uc := NewUseCase(store.Catalog(), resolver, hours, time.UTC, logger.NewNop())
	uc.timeProvider = testfixtures.NewClock(testfixtures.ReferenceTime)
	return uc
}

func TestExecute_CountsFreeStaffPerSlot(t *testing.T) {
	store := testfixtures.NewStore()
	branch := store.AddBranch("Center")
	service := store.AddService("pedicure", "200000.00", 60)
	customer := store.AddUser(domain.RoleCustomer, "an")
	first := store.AddUser(domain.RoleStaff, "mai")
	second := store.AddUser(domain.RoleStaff, "hoa")
	day := testfixtures.Date(1)
	store.ApproveShift(first, branch, day, domain.ShiftMorning)
	store.ApproveShift(second, branch, day, domain.ShiftMorning)
	store.AddAppointment(domain.Appointment{
		CustomerID: customer, BranchID: branch, Date: day,
		StartTime: types.MustTimeString("10:30"), DurationMinutes: 60, Status: domain.StatusConfirmed,
	}, first, service)

	uc := newUseCase(store, WorkingHours{
		Open:        types.MustTimeString("10:00"),
		Close:       types.MustTimeString("13:00"),
		StepMinutes: 60,
	})

	resp, err := uc.Execute(context.Background(), &Request{BranchID: branch, ServiceID: service, Date: day})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	assert.Equal(t, types.MustTimeString("10:00"), resp.Slots[0].StartTime)
	assert.Equal(t, "MORNING", resp.Slots[0].Shift)
	assert.Equal(t, 1, resp.Slots[0].FreeStaff)
	assert.Equal(t, 2, resp.Slots[0].OnShift)
	assert.Equal(t, 50.0, resp.Slots[0].OccupancyRate)

	assert.Equal(t, 1, resp.Slots[1].FreeStaff)

	assert.Equal(t, "AFTERNOON", resp.Slots[2].Shift)
	assert.Equal(t, 0, resp.Slots[2].FreeStaff)
	assert.Equal(t, 0, resp.Slots[2].OnShift)
}

func TestExecute_Errors(t *testing.T) {
	store := testfixtures.NewStore()
	branch := store.AddBranch("Center")
	service := store.AddService("pedicure", "200000.00", 60)
	inactive := store.AddService("old", "1.00", 30)
	store.DeactivateService(inactive)

	uc := newUseCase(store, WorkingHours{
		Open:        types.MustTimeString("08:00"),
		Close:       types.MustTimeString("21:00"),
		StepMinutes: 30,
	})

	tests := []struct {
		name string
		req  *Request
		want error
	}{
		{"missing branch", &Request{ServiceID: service, Date: testfixtures.Date(1)}, ErrInvalidInput},
		{"missing date", &Request{BranchID: branch, ServiceID: service}, ErrInvalidInput},
		{"past date", &Request{BranchID: branch, ServiceID: service, Date: testfixtures.Date(-1)}, ErrInvalidDate},
		{"unknown branch", &Request{BranchID: 999, ServiceID: service, Date: testfixtures.Date(1)}, ErrBranchNotFound},
		{"unknown service", &Request{BranchID: branch, ServiceID: 999, Date: testfixtures.Date(1)}, ErrServiceNotFound},
		{"inactive service", &Request{BranchID: branch, ServiceID: inactive, Date: testfixtures.Date(1)}, ErrServiceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExecute_TodayIsSalonToday(t *testing.T) {
	store := testfixtures.NewStore()
	branch := store.AddBranch("Center")
	service := store.AddService("pedicure", "200000.00", 60)
	hours := WorkingHours{
		Open:        types.MustTimeString("08:00"),
		Close:       types.MustTimeString("12:00"),
		StepMinutes: 60,
	}

	resolver := scheduling.NewResolver(store.Staff(), store.Appointments(), logger.NewNop())
	uc := NewUseCase(store.Catalog(), resolver, hours, testfixtures.SalonZone, logger.NewNop())
	clock := testfixtures.NewClock(time.Date(2026, time.October, 22, 3, 0, 0, 0, time.UTC)) // 10:00 in the salon
	uc.timeProvider = clock

	resp, err := uc.Execute(context.Background(), &Request{BranchID: branch, ServiceID: service, Date: testfixtures.Date(1)})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, types.MustTimeString("10:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.MustTimeString("11:00"), resp.Slots[1].StartTime)

	clock.Set(time.Date(2026, time.October, 21, 20, 0, 0, 0, time.UTC))
	_, err = uc.Execute(context.Background(), &Request{BranchID: branch, ServiceID: service, Date: testfixtures.Date(0)})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
