package assign_recurring_shifts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	assignRecurring "github.com/m04kA/SMC-SalonBooking/internal/usecase/assign_recurring_shifts"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRule        = "некорректное правило повторения (RRULE)"
	msgInvalidRange       = "некорректный период"
	msgBranchNotFound     = "филиал не найден"
	msgUserNotFound       = "пользователь не найден"
	msgForbidden          = "назначать смены может только администратор"
	msgNotStaff           = "смены можно назначать только мастерам"
)

type Handler struct {
	useCase AssignRecurringShiftsUseCase
	logger  Logger
}

func NewHandler(useCase AssignRecurringShiftsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/shifts/recurring
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var body AssignRecurringBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /admin/shifts/recurring - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req, err := body.ToUseCaseRequest(adminID)
	if err != nil {
		h.logger.Warn("POST /admin/shifts/recurring - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, assignRecurring.ErrInvalidRule):
			h.logger.Warn("POST /admin/shifts/recurring - Invalid rule %q: %v", body.RRule, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		case errors.Is(err, assignRecurring.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, assignRecurring.ErrNotStaff):
			handlers.RespondBadRequest(w, msgNotStaff)

		case errors.Is(err, assignRecurring.ErrForbidden):
			h.logger.Warn("POST /admin/shifts/recurring - Forbidden: user_id=%d", adminID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, assignRecurring.ErrBranchNotFound):
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, assignRecurring.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("POST /admin/shifts/recurring - Failed to assign shifts: staff_id=%d, error=%v", body.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/shifts/recurring - Assigned: staff_id=%d, created=%d, approved=%d, skipped=%d",
		body.StaffID, len(result.Created), len(result.Approved), len(result.Skipped))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
