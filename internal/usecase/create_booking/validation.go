package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// validateRequest валидирует входные данные, не зависящие от БД
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note is longer than %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}

// validateSlotFields проверяет, что филиал, дата и время указаны
func validateSlotFields(req *Request) error {
	if req.BranchID <= 0 || req.Date.IsZero() || req.StartTime.IsZero() {
		return ErrIncompleteRequest
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// resolvePaymentMethod по умолчанию ONLINE, допускаются только ONLINE и CASH
func resolvePaymentMethod(method domain.PaymentMethod) (domain.PaymentMethod, error) {
	switch method {
	case "":
		return domain.DefaultPaymentMethod, nil
	case domain.PaymentOnline, domain.PaymentCash:
		return method, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}
}

// validateNotInPast дата не раньше сегодняшней, сегодня - время не раньше текущего
func validateNotInPast(date time.Time, start types.TimeString, now time.Time) error {
	day := domain.DateOnly(date)
	today := domain.DateOnly(now)

	if day.Before(today) {
		return ErrDateInPast
	}

	if day.Equal(today) && start.IsBefore(types.NewTimeString(now)) {
		return fmt.Errorf("%w: %s has already passed", ErrDateInPast, start)
	}

	return nil
}
