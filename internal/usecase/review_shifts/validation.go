package review_shifts

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func validateDecision(req *DecisionRequest) error {
	if req.ShiftID <= 0 {
		return fmt.Errorf("%w: shiftID must be positive", ErrInvalidInput)
	}
	if req.AdminID <= 0 {
		return fmt.Errorf("%w: adminID must be positive", ErrInvalidInput)
	}
	if req.BranchID != nil && *req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}
	return nil
}

func validateBulk(req *BulkApproveRequest) error {
	if req.AdminID <= 0 {
		return fmt.Errorf("%w: adminID must be positive", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	start, end := domain.DateOnly(req.StartDate), domain.DateOnly(req.EndDate)
	if end.Before(start) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}
	if end.Sub(start).Hours()/24 > domain.MaxRecurringRangeDays {
		return fmt.Errorf("%w: range is longer than %d days", ErrInvalidInput, domain.MaxRecurringRangeDays)
	}

	if req.BranchID != nil && *req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}
	return nil
}
