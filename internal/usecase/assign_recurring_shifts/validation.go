package assign_recurring_shifts

import (
	"fmt"

	"github.com/teambition/rrule-go"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest валидирует входные данные и возвращает тип смены
func validateRequest(req *Request) (domain.ShiftBucket, error) {
	if req.AdminID <= 0 || req.StaffID <= 0 || req.BranchID <= 0 {
		return "", fmt.Errorf("%w: adminID, staffID and branchID must be positive", ErrInvalidInput)
	}

	bucket, err := domain.ParseShiftBucket(req.Shift)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return "", fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	start, end := domain.DateOnly(req.StartDate), domain.DateOnly(req.EndDate)
	if end.Before(start) {
		return "", fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}
	if end.Sub(start).Hours()/24 > domain.MaxRecurringRangeDays {
		return "", fmt.Errorf("%w: range is longer than %d days", ErrInvalidInput, domain.MaxRecurringRangeDays)
	}

	return bucket, nil
}

// parseRule разбирает RRULE; DTSTART всегда берется из запроса
func parseRule(value string) (*rrule.RRule, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: rule is empty", ErrInvalidRule)
	}

	rule, err := rrule.StrToRRule(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	return rule, nil
}
