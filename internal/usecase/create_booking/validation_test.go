package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func TestResolvePaymentMethod(t *testing.T) {
	m, err := resolvePaymentMethod("")
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentOnline, m)

	_, err = resolvePaymentMethod("BITCOIN")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestValidateNotInPast(t *testing.T) {
	now := time.Date(2026, 10, 21, 14, 0, 0, 0, time.UTC)

	assert.NoError(t, validateNotInPast(now, types.MustTimeString("14:00"), now))
	assert.NoError(t, validateNotInPast(now.AddDate(0, 0, 1), types.MustTimeString("08:00"), now))
	assert.ErrorIs(t, validateNotInPast(now, types.MustTimeString("13:59"), now), ErrDateInPast)
	assert.ErrorIs(t, validateNotInPast(now.AddDate(0, 0, -1), types.MustTimeString("20:00"), now), ErrDateInPast)
}

func TestValidateRequest_NoteTooLong(t *testing.T) {
	note := string(make([]byte, domain.MaxNoteLength+1))
	err := validateRequest(&Request{CustomerID: 1, Note: &note})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
