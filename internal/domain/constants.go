package domain

import "time"

// Default values
const (
	DefaultServiceDurationMinutes = 60
	DefaultCancelNotice           = 3 * time.Hour
	DefaultPaymentMethod          = PaymentOnline
)

// Business validation constants
const (
	MaxNoteLength         = 500
	MaxRequestedDuration  = 12 * 60
	MaxRecurringRangeDays = 92
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
