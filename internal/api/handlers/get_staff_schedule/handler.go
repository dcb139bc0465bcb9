package get_staff_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getStaffSchedule "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_staff_schedule"
)

const (
	msgInvalidStaffID = "некорректный ID мастера"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden      = "расписание мастера доступно только ему и администратору"
	msgNotStaff       = "пользователь не является мастером"
	msgUserNotFound   = "пользователь не найден"
)

type Handler struct {
	useCase GetStaffScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetStaffScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/schedule
// Query params: start (optional, любой день недели)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/schedule - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	start, err := handlers.QueryDate(r, "start")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/schedule - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Без start use case берет текущую неделю
	req := &getStaffSchedule.Request{RequesterID: requesterID, StaffID: staffID}
	if start != nil {
		req.Start = *start
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getStaffSchedule.ErrAccessDenied):
			h.logger.Warn("GET /staff/{id}/schedule - Access denied: staff_id=%d, requester_id=%d", staffID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getStaffSchedule.ErrNotStaff):
			handlers.RespondBadRequest(w, msgNotStaff)

		case errors.Is(err, getStaffSchedule.ErrUserNotFound):
			h.logger.Warn("GET /staff/{id}/schedule - User not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /staff/{id}/schedule - Failed to get schedule: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/schedule - Schedule retrieved: staff_id=%d, week_start=%s",
		staffID, result.WeekStart.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
