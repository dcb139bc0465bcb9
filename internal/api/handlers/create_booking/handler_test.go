package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type stubUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

func post(uc CreateBookingUseCase, body string, userID int64) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	if userID > 0 {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		AppointmentID:   11,
		BookingCode:     "BK00011",
		CustomerID:      5,
		BranchID:        1,
		ServiceID:       3,
		StaffID:         7,
		Date:            time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC),
		StartTime:       types.MustTimeString("10:00"),
		DurationMinutes: 60,
		Status:          string(domain.StatusPending),
		TotalPrice:      decimal.RequireFromString("35.00"),
		PaymentID:       21,
		PaymentMethod:   "ONLINE",
		PaymentStatus:   "UNPAID",
		CreatedAt:       time.Date(2026, 10, 21, 8, 0, 0, 0, time.UTC),
	}}

	w := post(uc, `{"serviceId":3,"branchId":1,"date":"2026-10-22","startTime":"10:00","note":"french tips"}`, 5)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(5), uc.got.CustomerID)
	assert.Equal(t, "10:00", uc.got.StartTime.String())
	assert.Equal(t, domain.PaymentMethod(""), uc.got.PaymentMethod)
	require.NotNil(t, uc.got.Note)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "BK00011", body.BookingCode)
	assert.Equal(t, int64(7), body.StaffID)
	assert.True(t, decimal.RequireFromString("35").Equal(body.TotalPrice))
	assert.Equal(t, "UNPAID", body.Payment.Status)
}

func TestHandle_MissingFieldsReachUseCase(t *testing.T) {
	uc := &stubUseCase{err: createBooking.ErrIncompleteRequest}

	w := post(uc, `{"serviceId":3}`, 5)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, uc.got)
	assert.True(t, uc.got.Date.IsZero())
	assert.True(t, uc.got.StartTime.IsZero())
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"serviceId":`},
		{name: "unknown field", body: `{"serviceId":3,"carId":1}`},
		{name: "bad date", body: `{"serviceId":3,"branchId":1,"date":"22/10/2026","startTime":"10:00"}`},
		{name: "bad time", body: `{"serviceId":3,"branchId":1,"date":"2026-10-22","startTime":"ten"}`},
		{name: "note too long", body: `{"serviceId":3,"note":"` + strings.Repeat("a", 501) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			w := post(uc, tt.body, 5)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_Unauthorized(t *testing.T) {
	w := post(&stubUseCase{}, `{}`, 0)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: createBooking.ErrInvalidService, want: http.StatusBadRequest},
		{err: createBooking.ErrDateInPast, want: http.StatusBadRequest},
		{err: createBooking.ErrInvalidPaymentMethod, want: http.StatusBadRequest},
		{err: createBooking.ErrBranchNotFound, want: http.StatusNotFound},
		{err: createBooking.ErrNoStaffAvailable, want: http.StatusConflict},
		{err: createBooking.ErrSlotJustTaken, want: http.StatusConflict},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := post(&stubUseCase{err: tt.err}, `{"serviceId":3,"branchId":1,"date":"2026-10-22","startTime":"10:00"}`, 5)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
