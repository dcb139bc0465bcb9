package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func TestOverlaps_Boundary(t *testing.T) {
	nine := types.MustTimeString("09:00")
	ten := types.MustTimeString("10:00")

	assert.False(t, Overlaps(nine, 60, ten, 30))
	assert.True(t, Overlaps(nine, 61, ten, 30))
}

func TestOverlaps_ZeroDuration(t *testing.T) {
	nine := types.MustTimeString("09:00")
	assert.False(t, Overlaps(nine, 0, nine, 60))
	assert.False(t, Overlaps(nine, 60, types.MustTimeString("09:30"), 0))
}

func TestOverlaps_Containment(t *testing.T) {
	assert.True(t, Overlaps(types.MustTimeString("09:00"), 180, types.MustTimeString("10:00"), 15))
}

func TestOverlaps_Symmetric(t *testing.T) {
	starts := []string{"08:00", "08:30", "09:00", "09:15", "10:00", "11:45"}
	durations := []int{0, 1, 15, 30, 60, 90}

	for _, as := range starts {
		for _, ad := range durations {
			for _, bs := range starts {
				for _, bd := range durations {
					a := types.MustTimeString(as)
					b := types.MustTimeString(bs)
					assert.Equal(t, Overlaps(a, ad, b, bd), Overlaps(b, bd, a, ad), "%s/%d vs %s/%d", as, ad, bs, bd)
				}
			}
		}
	}
}
