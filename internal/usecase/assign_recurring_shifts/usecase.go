package assign_recurring_shifts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	shiftRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/shift"
	staffRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/staff"
)

const decisionAssigned = "assigned"

// UseCase use case для назначения мастеру подтвержденных смен по правилу повторения
type UseCase struct {
	userRepo   UserRepository
	branchRepo BranchRepository
	shiftRepo  ShiftRepository
	txManager  TransactionManager
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	branchRepo BranchRepository,
	shiftRepo ShiftRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:   userRepo,
		branchRepo: branchRepo,
		shiftRepo:  shiftRepo,
		txManager:  txManager,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute создает смены APPROVED на каждую дату правила
// Заявки PENDING на эти даты подтверждаются, остальные существующие записи не меняются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignRecurringShifts: admin=%d, staff=%d, branch=%d, shift=%s, rule=%q",
		req.AdminID, req.StaffID, req.BranchID, req.Shift, req.RRule)

	// 1. Валидация входных данных и правила
	bucket, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("AssignRecurringShifts: validation failed: %v", err)
		return nil, err
	}

	rule, err := parseRule(req.RRule)
	if err != nil {
		uc.logger.Warn("AssignRecurringShifts: %v", err)
		return nil, err
	}

	// 2. Права и участники
	if err := uc.checkUser(ctx, req.AdminID, (*domain.User).IsAdmin, ErrForbidden); err != nil {
		return nil, err
	}
	if err := uc.checkUser(ctx, req.StaffID, (*domain.User).IsStaff, ErrNotStaff); err != nil {
		return nil, err
	}
	if _, err := uc.branchRepo.GetBranch(ctx, req.BranchID); err != nil {
		if errors.Is(err, catalogRepo.ErrBranchNotFound) {
			uc.logger.Warn("AssignRecurringShifts: branch id=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("AssignRecurringShifts: failed to get branch id=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	// 3. Даты по правилу
	dates := expandDates(rule, req.StartDate, req.EndDate)
	uc.logger.Info("AssignRecurringShifts: rule yields %d date(s)", len(dates))

	resp := &Response{
		Created:  []int64{},
		Approved: []int64{},
		Skipped:  []SkippedDate{},
	}

	// 4. Все смены назначаются в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, date := range dates {
			key := domain.ShiftKey{StaffID: req.StaffID, WorkDate: date, Bucket: bucket}

			existing, err := uc.shiftRepo.GetByKey(txCtx, key)
			if err != nil && !errors.Is(err, shiftRepo.ErrShiftNotFound) {
				uc.logger.Error("AssignRecurringShifts: failed to get shift %s: %v", date.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: failed to get shift: %v", ErrInternal, err)
			}

			switch {
			case existing == nil:
				created, err := uc.shiftRepo.Create(txCtx, &domain.Shift{
					StaffID:    req.StaffID,
					WorkDate:   date,
					Bucket:     bucket,
					Status:     domain.ShiftApproved,
					BranchID:   &req.BranchID,
					ApprovedBy: &req.AdminID,
				})
				if err != nil {
					uc.logger.Error("AssignRecurringShifts: failed to create shift %s: %v", date.Format(domain.DateFormat), err)
					return fmt.Errorf("%w: failed to create shift: %v", ErrInternal, err)
				}
				resp.Created = append(resp.Created, created.ID)

			case existing.IsPending():
				existing.Approve(req.BranchID, req.AdminID)
				if err := uc.shiftRepo.Update(txCtx, existing); err != nil {
					uc.logger.Error("AssignRecurringShifts: failed to approve shift id=%d: %v", existing.ID, err)
					return fmt.Errorf("%w: failed to approve shift: %v", ErrInternal, err)
				}
				resp.Approved = append(resp.Approved, existing.ID)

			default:
				resp.Skipped = append(resp.Skipped, SkippedDate{
					Date:    date,
					ShiftID: existing.ID,
					Status:  string(existing.Status),
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.AddShiftDecisions(decisionAssigned, len(resp.Created)+len(resp.Approved))
	uc.logger.Info("AssignRecurringShifts: created=%d, approved=%d, skipped=%d",
		len(resp.Created), len(resp.Approved), len(resp.Skipped))

	return resp, nil
}

func (uc *UseCase) checkUser(ctx context.Context, id int64, hasRole func(*domain.User) bool, roleErr error) error {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrUserNotFound) {
			uc.logger.Warn("AssignRecurringShifts: user id=%d not found", id)
			return ErrUserNotFound
		}
		uc.logger.Error("AssignRecurringShifts: failed to get user id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !hasRole(user) {
		uc.logger.Warn("AssignRecurringShifts: user id=%d has role %s", id, user.Role)
		return roleErr
	}

	return nil
}
