package review_shift

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	reviewShifts "github.com/m04kA/SMC-SalonBooking/internal/usecase/review_shifts"
)

const (
	msgInvalidShiftID     = "некорректный ID смены"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgShiftNotFound      = "заявка на смену не найдена"
	msgNotPending         = "по заявке уже принято решение"
	msgBranchRequired     = "для подтверждения смены укажите филиал"
	msgBranchNotFound     = "филиал не найден"
	msgForbidden          = "решения по сменам принимает только администратор"
)

// Handler подтверждение и отклонение заявок на смены
type Handler struct {
	useCase ReviewShiftsUseCase
	logger  Logger
}

func NewHandler(useCase ReviewShiftsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Approve POST /api/v1/admin/shifts/{shiftId}/approve
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decisionRequest(w, r, "POST /admin/shifts/{id}/approve")
	if !ok {
		return
	}

	// Тело необязательно: пустой запрос подтверждает смену в филиале из заявки
	if r.ContentLength != 0 {
		var body ApproveBody
		if err := handlers.DecodeJSON(r, &body); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
			h.logger.Warn("POST /admin/shifts/{id}/approve - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		req.BranchID = body.BranchID
	}

	result, err := h.useCase.ApproveOne(r.Context(), req)
	if err != nil {
		h.respondError(w, "POST /admin/shifts/{id}/approve", req, err)
		return
	}

	h.logger.Info("POST /admin/shifts/{id}/approve - Shift approved: shift_id=%d, admin_id=%d", req.ShiftID, req.AdminID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// Reject POST /api/v1/admin/shifts/{shiftId}/reject
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decisionRequest(w, r, "POST /admin/shifts/{id}/reject")
	if !ok {
		return
	}

	result, err := h.useCase.RejectOne(r.Context(), req)
	if err != nil {
		h.respondError(w, "POST /admin/shifts/{id}/reject", req, err)
		return
	}

	h.logger.Info("POST /admin/shifts/{id}/reject - Shift rejected: shift_id=%d, admin_id=%d", req.ShiftID, req.AdminID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) decisionRequest(w http.ResponseWriter, r *http.Request, route string) (*reviewShifts.DecisionRequest, bool) {
	shiftID, err := handlers.PathInt64(r, "shiftId")
	if err != nil {
		h.logger.Warn("%s - Invalid shift ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return nil, false
	}

	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return nil, false
	}

	return &reviewShifts.DecisionRequest{ShiftID: shiftID, AdminID: adminID}, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, req *reviewShifts.DecisionRequest, err error) {
	switch {
	case errors.Is(err, reviewShifts.ErrShiftNotFound):
		h.logger.Warn("%s - Shift not found: shift_id=%d", route, req.ShiftID)
		handlers.RespondNotFound(w, msgShiftNotFound)

	case errors.Is(err, reviewShifts.ErrNotPending):
		h.logger.Warn("%s - Shift is not pending: shift_id=%d", route, req.ShiftID)
		handlers.RespondConflict(w, msgNotPending)

	case errors.Is(err, reviewShifts.ErrBranchRequired):
		h.logger.Warn("%s - Branch required: shift_id=%d", route, req.ShiftID)
		handlers.RespondBadRequest(w, msgBranchRequired)

	case errors.Is(err, reviewShifts.ErrBranchNotFound):
		handlers.RespondNotFound(w, msgBranchNotFound)

	case errors.Is(err, reviewShifts.ErrForbidden), errors.Is(err, reviewShifts.ErrUserNotFound):
		h.logger.Warn("%s - Forbidden: admin_id=%d", route, req.AdminID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, reviewShifts.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	default:
		h.logger.Error("%s - Failed to review shift: shift_id=%d, error=%v", route, req.ShiftID, err)
		handlers.RespondInternalError(w)
	}
}
