package submit_shift_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	submitShiftRequest "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_shift_request"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса, shift: MORNING, AFTERNOON или EVENING"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgOutsideWindow      = "заявку можно подать только на текущую или следующую неделю"
	msgDuplicate          = "заявка на эту смену уже подана"
	msgNotStaff           = "подавать заявки на смены могут только мастера"
	msgUserNotFound       = "пользователь не найден"
)

type Handler struct {
	useCase SubmitShiftRequestUseCase
	logger  Logger
}

func NewHandler(useCase SubmitShiftRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/shift-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var body ShiftRequestBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /staff/shift-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req, err := body.ToUseCaseRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /staff/shift-requests - Invalid work date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, submitShiftRequest.ErrOutsideWindow):
			h.logger.Warn("POST /staff/shift-requests - Outside window: staff_id=%d, date=%s", staffID, body.WorkDate)
			handlers.RespondBadRequest(w, msgOutsideWindow)

		case errors.Is(err, submitShiftRequest.ErrDuplicateRequest):
			h.logger.Warn("POST /staff/shift-requests - Duplicate: staff_id=%d, date=%s, shift=%s", staffID, body.WorkDate, body.Shift)
			handlers.RespondConflict(w, msgDuplicate)

		case errors.Is(err, submitShiftRequest.ErrNotStaff):
			h.logger.Warn("POST /staff/shift-requests - Not staff: user_id=%d", staffID)
			handlers.RespondForbidden(w, msgNotStaff)

		case errors.Is(err, submitShiftRequest.ErrUserNotFound):
			h.logger.Warn("POST /staff/shift-requests - User not found: user_id=%d", staffID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, submitShiftRequest.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /staff/shift-requests - Failed to submit: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/shift-requests - Request submitted: shift_id=%d, staff_id=%d, reopened=%t",
		result.ShiftID, staffID, result.Reopened)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
