package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/testfixtures"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func timeStrings(values ...string) []types.TimeString {
	out := make([]types.TimeString, len(values))
	for i, v := range values {
		out[i] = types.MustTimeString(v)
	}
	return out
}

func TestGenerateTimeSlots(t *testing.T) {
	hours := WorkingHours{
		Open:        types.MustTimeString("07:00"),
		Close:       types.MustTimeString("09:00"),
		StepMinutes: 30,
	}
	now := testfixtures.ReferenceTime // 08:00

	t.Run("future date returns whole grid", func(t *testing.T) {
		got := generateTimeSlots(hours, 30, testfixtures.Date(1), now)
		assert.Equal(t, timeStrings("07:00", "07:30", "08:00", "08:30"), got)
	})

	t.Run("today drops started slots", func(t *testing.T) {
		got := generateTimeSlots(hours, 30, testfixtures.Date(0), now)
		assert.Equal(t, timeStrings("08:00", "08:30"), got)
	})

	t.Run("service must finish before closing", func(t *testing.T) {
		got := generateTimeSlots(hours, 90, testfixtures.Date(1), now)
		assert.Equal(t, timeStrings("07:00", "07:30"), got)
	})

	t.Run("late closing does not overflow midnight", func(t *testing.T) {
		late := WorkingHours{
			Open:        types.MustTimeString("22:00"),
			Close:       types.MustTimeString("23:59"),
			StepMinutes: 60,
		}
		got := generateTimeSlots(late, 60, testfixtures.Date(1), now)
		assert.Equal(t, timeStrings("22:00"), got)
	})

	t.Run("zero step", func(t *testing.T) {
		assert.Empty(t, generateTimeSlots(WorkingHours{Open: hours.Open, Close: hours.Close}, 30, testfixtures.Date(1), now))
	})
}
