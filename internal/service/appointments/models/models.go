package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelRequest запрос клиента на отмену записи
type CancelRequest struct {
	UserID int64 `json:"userId"`
}

// UpdateStatusRequest запрос мастера или администратора на смену статуса
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Action string `json:"action"` // confirm, check-in, in-progress, done, check-out
}

// ListUserBookingsRequest запрос на получение записей пользователя
// Для клиента - его записи, для мастера - назначенные ему
type ListUserBookingsRequest struct {
	RequesterID int64      `json:"requesterId"`
	UserID      int64      `json:"userId"`
	Status      *string    `json:"status,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64           `json:"id"`
	BookingCode     string          `json:"bookingCode"`
	CustomerID      int64           `json:"customerId"`
	BranchID        int64           `json:"branchId"`
	Date            string          `json:"date"`      // "2026-10-21"
	StartTime       string          `json:"startTime"` // "10:00"
	DurationMinutes int             `json:"durationMinutes"`
	Status          string          `json:"status"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Note            *string         `json:"note,omitempty"`

	Services []ServiceLineResponse `json:"services"`
	StaffIDs []int64               `json:"staffIds"`

	PaymentStatus *string `json:"paymentStatus,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServiceLineResponse услуга в записи
type ServiceLineResponse struct {
	ServiceID int64           `json:"serviceId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              a.ID,
		BookingCode:     a.BookingCode(),
		CustomerID:      a.CustomerID,
		BranchID:        a.BranchID,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		DurationMinutes: a.EffectiveDuration(),
		Status:          string(a.Status),
		TotalPrice:      a.TotalPrice,
		Note:            a.Note,
		Services:        make([]ServiceLineResponse, len(a.Services)),
		StaffIDs:        make([]int64, len(a.Staff)),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}

	for i, l := range a.Services {
		resp.Services[i] = ServiceLineResponse{ServiceID: l.ServiceID, Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	for i, l := range a.Staff {
		resp.StaffIDs[i] = l.StaffID
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
	}

	for _, a := range list {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
