package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
)

const (
	msgUnauthorized         = "пользователь не авторизован"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidService       = "услуга не найдена или недоступна"
	msgIncompleteRequest    = "укажите филиал, дату и время"
	msgDateInPast           = "нельзя записаться на прошедшее время"
	msgBranchNotFound       = "филиал не найден"
	msgInvalidPaymentMethod = "неподдерживаемый способ оплаты"
	msgNoStaffAvailable     = "на выбранное время нет свободных мастеров"
	msgSlotJustTaken        = "выбранное время только что заняли, выберите другое"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidService):
			h.logger.Warn("POST /bookings - Invalid service: user_id=%d, service_id=%d", customerID, req.ServiceID)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, createBooking.ErrIncompleteRequest):
			h.logger.Warn("POST /bookings - Incomplete request: user_id=%d", customerID)
			handlers.RespondBadRequest(w, msgIncompleteRequest)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: user_id=%d, date=%s", customerID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidPaymentMethod):
			h.logger.Warn("POST /bookings - Unsupported payment method: %s", req.PaymentMethod)
			handlers.RespondBadRequest(w, msgInvalidPaymentMethod)

		case errors.Is(err, createBooking.ErrBranchNotFound):
			h.logger.Warn("POST /bookings - Branch not found: branch_id=%d", req.BranchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, createBooking.ErrNoStaffAvailable):
			h.logger.Warn("POST /bookings - No staff available: branch_id=%d, date=%s, time=%s",
				req.BranchID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgNoStaffAvailable)

		case errors.Is(err, createBooking.ErrSlotJustTaken):
			h.logger.Warn("POST /bookings - Slot just taken: branch_id=%d, date=%s, time=%s",
				req.BranchID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotJustTaken)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, branch_id=%d, error=%v",
				customerID, req.BranchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: appointment_id=%d, code=%s, staff_id=%d",
		result.AppointmentID, result.BookingCode, result.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
