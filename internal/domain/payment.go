package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentCard   PaymentMethod = "CARD"
	PaymentOnline PaymentMethod = "ONLINE"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// Payment placeholder created with the appointment, captured elsewhere
type Payment struct {
	ID            int64
	AppointmentID int64
	Amount        decimal.Decimal
	Method        PaymentMethod
	Status        PaymentStatus
	CreatedAt     time.Time
}
