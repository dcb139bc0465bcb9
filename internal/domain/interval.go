package domain

import "github.com/m04kA/SMC-SalonBooking/pkg/types"

// Overlaps reports whether [aStart, aStart+aDur) and [bStart, bStart+bDur) intersect.
// Both intervals are on the same calendar day. Touching ends do not overlap,
// a zero (or negative) duration never overlaps anything.
func Overlaps(aStart types.TimeString, aDur int, bStart types.TimeString, bDur int) bool {
	if aDur <= 0 || bDur <= 0 {
		return false
	}

	a0 := aStart.Minutes()
	a1 := a0 + aDur
	b0 := bStart.Minutes()
	b1 := b0 + bDur

	return a0 < b1 && b0 < a1
}
