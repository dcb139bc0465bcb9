package review_shift

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	reviewShifts "github.com/m04kA/SMC-SalonBooking/internal/usecase/review_shifts"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type stubUseCase struct {
	approved, rejected *reviewShifts.DecisionRequest
	err                error
}

func (s *stubUseCase) ApproveOne(_ context.Context, req *reviewShifts.DecisionRequest) (*reviewShifts.ShiftResponse, error) {
	s.approved = req
	return s.response(req, "APPROVED")
}

func (s *stubUseCase) RejectOne(_ context.Context, req *reviewShifts.DecisionRequest) (*reviewShifts.ShiftResponse, error) {
	s.rejected = req
	return s.response(req, "REJECTED")
}

func (s *stubUseCase) response(req *reviewShifts.DecisionRequest, status string) (*reviewShifts.ShiftResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &reviewShifts.ShiftResponse{
		ShiftID:    req.ShiftID,
		WorkDate:   time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC),
		Shift:      "MORNING",
		Status:     status,
		BranchID:   req.BranchID,
		ApprovedBy: &req.AdminID,
	}, nil
}

func do(uc ReviewShiftsUseCase, url string, body io.Reader) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	router := mux.NewRouter()
	router.HandleFunc("/admin/shifts/{shiftId}/approve", h.Approve)
	router.HandleFunc("/admin/shifts/{shiftId}/reject", h.Reject)

	r := httptest.NewRequest(http.MethodPost, url, body)
	r = r.WithContext(middleware.WithUserID(r.Context(), 1))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestApprove_WithBranch(t *testing.T) {
	uc := &stubUseCase{}

	w := do(uc, "/admin/shifts/5/approve", strings.NewReader(`{"branchId":2}`))

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.approved.BranchID)
	assert.Equal(t, int64(2), *uc.approved.BranchID)
	assert.Equal(t, int64(1), uc.approved.AdminID)
	assert.Contains(t, w.Body.String(), `"status":"APPROVED"`)
}

func TestApprove_EmptyBodyUsesRecordBranch(t *testing.T) {
	uc := &stubUseCase{}

	w := do(uc, "/admin/shifts/5/approve", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, uc.approved.BranchID)
}

func TestApprove_InvalidBody(t *testing.T) {
	uc := &stubUseCase{}

	w := do(uc, "/admin/shifts/5/approve", strings.NewReader(`{"branchId":-1}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.approved)
}

func TestReject(t *testing.T) {
	uc := &stubUseCase{}

	w := do(uc, "/admin/shifts/6/reject", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(6), uc.rejected.ShiftID)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: reviewShifts.ErrShiftNotFound, want: http.StatusNotFound},
		{err: reviewShifts.ErrNotPending, want: http.StatusConflict},
		{err: reviewShifts.ErrBranchRequired, want: http.StatusBadRequest},
		{err: reviewShifts.ErrForbidden, want: http.StatusForbidden},
		{err: reviewShifts.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, do(&stubUseCase{err: tt.err}, "/admin/shifts/5/approve", nil).Code)
			assert.Equal(t, tt.want, do(&stubUseCase{err: tt.err}, "/admin/shifts/5/reject", nil).Code)
		})
	}
}
