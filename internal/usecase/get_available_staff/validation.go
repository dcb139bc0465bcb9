package get_available_staff

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest валидирует входные данные и подставляет длительность по умолчанию
func validateRequest(req *Request) error {
	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes < 0 || req.DurationMinutes > domain.MaxRequestedDuration {
		return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, domain.MaxRequestedDuration)
	}
	if req.DurationMinutes == 0 {
		req.DurationMinutes = domain.DefaultServiceDurationMinutes
	}

	return nil
}
