package create_booking

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// CreateBookingRequest HTTP request model
// Филиал, дату и время проверяет use case, чтобы порядок ошибок был одинаковым для всех клиентов
type CreateBookingRequest struct {
	ServiceID     int64   `json:"serviceId"`
	BranchID      int64   `json:"branchId"`
	Date          string  `json:"date"`      // "2026-10-21"
	StartTime     string  `json:"startTime"` // "10:00"
	Note          *string `json:"note,omitempty" validate:"omitempty,max=500"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64           `json:"id"`
	BookingCode     string          `json:"bookingCode"`
	CustomerID      int64           `json:"customerId"`
	BranchID        int64           `json:"branchId"`
	ServiceID       int64           `json:"serviceId"`
	StaffID         int64           `json:"staffId"`
	Date            string          `json:"date"`
	StartTime       string          `json:"startTime"`
	DurationMinutes int             `json:"durationMinutes"`
	Status          string          `json:"status"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Note            *string         `json:"note,omitempty"`
	Payment         PaymentResponse `json:"payment"`
	CreatedAt       string          `json:"createdAt"`
}

type PaymentResponse struct {
	ID     int64  `json:"id"`
	Method string `json:"method"`
	Status string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые дата и время передаются нулевыми значениями
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	req := &createBooking.Request{
		CustomerID:    customerID,
		ServiceID:     r.ServiceID,
		BranchID:      r.BranchID,
		Note:          r.Note,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, errInvalidDate
		}
		req.Date = date
	}

	if r.StartTime != "" {
		startTime, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, errInvalidTime
		}
		req.StartTime = startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.AppointmentID,
		BookingCode:     resp.BookingCode,
		CustomerID:      resp.CustomerID,
		BranchID:        resp.BranchID,
		ServiceID:       resp.ServiceID,
		StaffID:         resp.StaffID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		TotalPrice:      resp.TotalPrice,
		Note:            resp.Note,
		Payment: PaymentResponse{
			ID:     resp.PaymentID,
			Method: resp.PaymentMethod,
			Status: resp.PaymentStatus,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
