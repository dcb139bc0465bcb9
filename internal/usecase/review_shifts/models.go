package review_shifts

import "time"

// DecisionRequest решение по одной заявке
type DecisionRequest struct {
	ShiftID  int64
	AdminID  int64
	BranchID *int64 // филиал смены; для подтверждения заменяет указанный в заявке
}

// BulkApproveRequest подтверждение всех заявок в PENDING за период
type BulkApproveRequest struct {
	AdminID   int64
	StartDate time.Time
	EndDate   time.Time
	BranchID  *int64 // филиал для заявок, у которых он не указан
}

// ShiftResponse заявка после решения
type ShiftResponse struct {
	ShiftID    int64
	StaffID    int64
	WorkDate   time.Time
	Shift      string
	Status     string
	BranchID   *int64
	ApprovedBy *int64
}

// BulkApproveResponse итог массового подтверждения
type BulkApproveResponse struct {
	Approved int
	ShiftIDs []int64
}
