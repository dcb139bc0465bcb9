package submit_shift_request

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest валидирует входные данные и возвращает тип смены
func validateRequest(req *Request) (domain.ShiftBucket, error) {
	if req.StaffID <= 0 {
		return "", fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.WorkDate.IsZero() {
		return "", fmt.Errorf("%w: workDate is required", ErrInvalidInput)
	}

	bucket, err := domain.ParseShiftBucket(req.Shift)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return bucket, nil
}

// validateWindow дата должна попадать в окно с понедельника этой недели по воскресенье следующей
func validateWindow(workDate time.Time, now time.Time) error {
	start, end := domain.SelfScheduleWindow(now)
	day := domain.DateOnly(workDate)

	if day.Before(start) || day.After(end) {
		return fmt.Errorf("%w: allowed %s..%s", ErrOutsideWindow,
			start.Format(domain.DateFormat), end.Format(domain.DateFormat))
	}

	return nil
}
