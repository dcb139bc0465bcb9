package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func TestAppointment_RecalcTotal(t *testing.T) {
	a := &Appointment{
		TotalPrice: decimal.NewFromInt(1),
		Services: []ServiceLine{
			{ServiceID: 1, Quantity: 1, UnitPrice: decimal.RequireFromString("150000.50")},
			{ServiceID: 2, Quantity: 2, UnitPrice: decimal.RequireFromString("80000")},
		},
	}

	total := a.RecalcTotal()

	assert.True(t, decimal.RequireFromString("310000.50").Equal(total))
	assert.True(t, total.Equal(a.TotalPrice))

	sum := decimal.Zero
	for _, l := range a.Services {
		sum = sum.Add(l.LineTotal())
	}
	assert.True(t, sum.Equal(a.TotalPrice))
}

func TestAppointment_RecalcTotal_NoLines(t *testing.T) {
	a := &Appointment{TotalPrice: decimal.NewFromInt(42)}
	assert.True(t, a.RecalcTotal().IsZero())
}

func TestAppointment_EffectiveDuration(t *testing.T) {
	a := &Appointment{DurationMinutes: 45}
	assert.Equal(t, 45, a.EffectiveDuration())

	a.Services = []ServiceLine{
		{ServiceID: 1, ServiceDuration: ptrTo(30)},
		{ServiceID: 2},
	}
	assert.Equal(t, 90, a.EffectiveDuration())
}

func TestAppointmentStatus_IsCommitted(t *testing.T) {
	assert.True(t, StatusPending.IsCommitted())
	assert.True(t, StatusConfirmed.IsCommitted())
	assert.True(t, StatusInProgress.IsCommitted())
	assert.False(t, StatusDone.IsCommitted())
	assert.False(t, StatusCanceled.IsCommitted())
	assert.False(t, StatusArrived.IsCommitted())
	assert.False(t, StatusOngoing.IsCommitted())
}

func TestAppointment_CanBeCancelled(t *testing.T) {
	a := &Appointment{
		Date:      time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC),
		StartTime: types.MustTimeString("15:00"),
		Status:    StatusConfirmed,
	}

	assert.True(t, a.CanBeCancelled(time.Date(2026, 10, 21, 12, 0, 0, 0, time.UTC), DefaultCancelNotice, time.UTC))
	assert.False(t, a.CanBeCancelled(time.Date(2026, 10, 21, 12, 1, 0, 0, time.UTC), DefaultCancelNotice, time.UTC))

	a.Status = StatusArrived
	assert.False(t, a.CanBeCancelled(time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC), DefaultCancelNotice, time.UTC))
}

func TestAppointment_StartsAt(t *testing.T) {
	zone := time.FixedZone("UTC+7", 7*60*60)
	a := &Appointment{
		Date:      time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC),
		StartTime: types.MustTimeString("09:30"),
	}

	start := a.StartsAt(zone)

	assert.Equal(t, zone, start.Location())
	assert.True(t, start.Equal(time.Date(2026, 10, 22, 2, 30, 0, 0, time.UTC)))
}

func TestAppointment_BookingCode(t *testing.T) {
	a := &Appointment{ID: 42}
	assert.Equal(t, "BK000042", a.BookingCode())
}

func TestService_Duration(t *testing.T) {
	assert.Equal(t, 60, (&Service{}).Duration())
	assert.Equal(t, 45, (&Service{DurationMinutes: ptrTo(45)}).Duration())
}
