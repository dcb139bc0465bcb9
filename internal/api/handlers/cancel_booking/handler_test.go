package cancel_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type stubService struct {
	gotID  int64
	gotReq *models.CancelRequest
	err    error
}

func (s *stubService) Cancel(_ context.Context, id int64, req *models.CancelRequest) (*models.AppointmentResponse, error) {
	s.gotID, s.gotReq = id, req
	if s.err != nil {
		return nil, s.err
	}
	return &models.AppointmentResponse{ID: id, Status: "CANCELED"}, nil
}

func patch(svc AppointmentService, url string, userID int64) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{appointmentId}/cancel", NewHandler(svc, logger.NewNop()).Handle)

	r := httptest.NewRequest(http.MethodPatch, url, nil)
	if userID > 0 {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_Cancelled(t *testing.T) {
	svc := &stubService{}

	w := patch(svc, "/bookings/12/cancel", 4)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(12), svc.gotID)
	assert.Equal(t, int64(4), svc.gotReq.UserID)
	assert.Contains(t, w.Body.String(), `"status":"CANCELED"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: appointments.ErrAppointmentNotFound, want: http.StatusNotFound},
		{name: "not owner", err: appointments.ErrAccessDenied, want: http.StatusForbidden},
		{name: "too late", err: appointments.ErrCannotCancel, want: http.StatusBadRequest},
		{name: "internal", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := patch(&stubService{err: tt.err}, "/bookings/12/cancel", 4)
			assert.Equal(t, tt.want, w.Code)
		})
	}

	assert.Equal(t, http.StatusUnauthorized, patch(&stubService{}, "/bookings/12/cancel", 0).Code)
	assert.Equal(t, http.StatusBadRequest, patch(&stubService{}, "/bookings/x/cancel", 4).Code)
}
