package approve_pending_shifts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	reviewShifts "github.com/m04kA/SMC-SalonBooking/internal/usecase/review_shifts"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "некорректный период"
	msgBranchRequired     = "у части заявок нет филиала, укажите branchId"
	msgBranchNotFound     = "филиал не найден"
	msgForbidden          = "решения по сменам принимает только администратор"
)

type Handler struct {
	useCase ApprovePendingUseCase
	logger  Logger
}

func NewHandler(useCase ApprovePendingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/shifts/approve-pending
// Подтверждает все заявки PENDING за период одной транзакцией
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var body ApprovePendingBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /admin/shifts/approve-pending - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req, err := body.ToUseCaseRequest(adminID)
	if err != nil {
		h.logger.Warn("POST /admin/shifts/approve-pending - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.ApprovePending(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reviewShifts.ErrBranchRequired):
			h.logger.Warn("POST /admin/shifts/approve-pending - Branch required: %v", err)
			handlers.RespondBadRequest(w, msgBranchRequired)

		case errors.Is(err, reviewShifts.ErrBranchNotFound):
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, reviewShifts.ErrForbidden), errors.Is(err, reviewShifts.ErrUserNotFound):
			h.logger.Warn("POST /admin/shifts/approve-pending - Forbidden: admin_id=%d", adminID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reviewShifts.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("POST /admin/shifts/approve-pending - Failed to approve: admin_id=%d, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/shifts/approve-pending - Approved %d shifts: admin_id=%d, period=%s..%s",
		result.Approved, adminID, body.StartDate, body.EndDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
