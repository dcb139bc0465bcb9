package review_shifts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	shiftRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/shift"
	staffRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/staff"
)

const (
	decisionApproved = "approved"
	decisionRejected = "rejected"
)

// UseCase решения администратора по заявкам мастеров на смены
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

// ApproveOne переводит заявку PENDING в APPROVED
// Филиал берется из запроса, иначе из заявки; без филиала подтверждать нельзя
func (uc *UseCase) ApproveOne(ctx context.Context, req *DecisionRequest) (*ShiftResponse, error) {
	uc.logger.Info("ApproveShift: shift=%d, admin=%d", req.ShiftID, req.AdminID)

	// 1. Валидация и права
	if err := validateDecision(req); err != nil {
		uc.logger.Warn("ApproveShift: validation failed: %v", err)
		return nil, err
	}
	if err := uc.checkAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}
	if err := uc.checkBranch(ctx, req.BranchID); err != nil {
		return nil, err
	}

	var result *domain.Shift

	// 2. Чтение под блокировкой и обновление
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		s, err := uc.getPending(txCtx, req.ShiftID)
		if err != nil {
			return err
		}

		branchID := req.BranchID
		if branchID == nil {
			branchID = s.BranchID
		}
		if branchID == nil {
			uc.logger.Warn("ApproveShift: shift id=%d has no branch", s.ID)
			return ErrBranchRequired
		}

		s.Approve(*branchID, req.AdminID)
		if err := uc.shiftRepo.Update(txCtx, s); err != nil {
			uc.logger.Error("ApproveShift: failed to update shift id=%d: %v", s.ID, err)
			return fmt.Errorf("%w: failed to update shift: %v", ErrInternal, err)
		}

		result = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.AddShiftDecisions(decisionApproved, 1)
	uc.logger.Info("ApproveShift: shift id=%d approved at branch=%d", result.ID, *result.BranchID)

	return toResponse(result), nil
}

// RejectOne переводит заявку PENDING в REJECTED, филиал сбрасывается
func (uc *UseCase) RejectOne(ctx context.Context, req *DecisionRequest) (*ShiftResponse, error) {
	uc.logger.Info("RejectShift: shift=%d, admin=%d", req.ShiftID, req.AdminID)

	if err := validateDecision(req); err != nil {
		uc.logger.Warn("RejectShift: validation failed: %v", err)
		return nil, err
	}
	if err := uc.checkAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}

	var result *domain.Shift

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		s, err := uc.getPending(txCtx, req.ShiftID)
		if err != nil {
			return err
		}

		s.Reject(req.AdminID)
		if err := uc.shiftRepo.Update(txCtx, s); err != nil {
			uc.logger.Error("RejectShift: failed to update shift id=%d: %v", s.ID, err)
			return fmt.Errorf("%w: failed to update shift: %v", ErrInternal, err)
		}

		result = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.AddShiftDecisions(decisionRejected, 1)
	uc.logger.Info("RejectShift: shift id=%d rejected", result.ID)

	return toResponse(result), nil
}

// ApprovePending подтверждает все заявки PENDING за период в одной транзакции
// Заявки без филиала получают BranchID; если его нет - не подтверждается ни одна
func (uc *UseCase) ApprovePending(ctx context.Context, req *BulkApproveRequest) (*BulkApproveResponse, error) {
	uc.logger.Info("ApprovePending: admin=%d, range=%s..%s",
		req.AdminID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация и права
	if err := validateBulk(req); err != nil {
		uc.logger.Warn("ApprovePending: validation failed: %v", err)
		return nil, err
	}
	if err := uc.checkAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}
	if err := uc.checkBranch(ctx, req.BranchID); err != nil {
		return nil, err
	}

	start, end := domain.DateOnly(req.StartDate), domain.DateOnly(req.EndDate)
	pending := domain.ShiftPending
	resp := &BulkApproveResponse{ShiftIDs: []int64{}}

	// 2. Все или ничего
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		shifts, err := uc.shiftRepo.List(txCtx, domain.ShiftFilter{
			Status:    &pending,
			StartDate: &start,
			EndDate:   &end,
		})
		if err != nil {
			uc.logger.Error("ApprovePending: failed to list pending shifts: %v", err)
			return fmt.Errorf("%w: failed to list shifts: %v", ErrInternal, err)
		}

		for _, s := range shifts {
			branchID := s.BranchID
			if branchID == nil {
				branchID = req.BranchID
			}
			if branchID == nil {
				uc.logger.Warn("ApprovePending: shift id=%d has no branch, batch aborted", s.ID)
				return fmt.Errorf("%w: shift id=%d", ErrBranchRequired, s.ID)
			}

			s.Approve(*branchID, req.AdminID)
			if err := uc.shiftRepo.Update(txCtx, s); err != nil {
				uc.logger.Error("ApprovePending: failed to update shift id=%d: %v", s.ID, err)
				return fmt.Errorf("%w: failed to update shift: %v", ErrInternal, err)
			}
			resp.ShiftIDs = append(resp.ShiftIDs, s.ID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	resp.Approved = len(resp.ShiftIDs)
	uc.metrics.AddShiftDecisions(decisionApproved, resp.Approved)
	uc.logger.Info("ApprovePending: approved %d shift(s)", resp.Approved)

	return resp, nil
}

func (uc *UseCase) getPending(ctx context.Context, shiftID int64) (*domain.Shift, error) {
	s, err := uc.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			uc.logger.Warn("ReviewShifts: shift id=%d not found", shiftID)
			return nil, ErrShiftNotFound
		}
		uc.logger.Error("ReviewShifts: failed to get shift id=%d: %v", shiftID, err)
		return nil, fmt.Errorf("%w: failed to get shift: %v", ErrInternal, err)
	}

	if !s.IsPending() {
		uc.logger.Warn("ReviewShifts: shift id=%d is already %s", shiftID, s.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrNotPending, s.Status)
	}

	return s, nil
}

func (uc *UseCase) checkAdmin(ctx context.Context, adminID int64) error {
	user, err := uc.userRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrUserNotFound) {
			uc.logger.Warn("ReviewShifts: user id=%d not found", adminID)
			return ErrUserNotFound
		}
		uc.logger.Error("ReviewShifts: failed to get user id=%d: %v", adminID, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin() {
		uc.logger.Warn("ReviewShifts: user id=%d has role %s", adminID, user.Role)
		return ErrForbidden
	}

	return nil
}

func (uc *UseCase) checkBranch(ctx context.Context, branchID *int64) error {
	if branchID == nil {
		return nil
	}

	if _, err := uc.branchRepo.GetBranch(ctx, *branchID); err != nil {
		if errors.Is(err, catalogRepo.ErrBranchNotFound) {
			uc.logger.Warn("ReviewShifts: branch id=%d not found", *branchID)
			return ErrBranchNotFound
		}
		uc.logger.Error("ReviewShifts: failed to get branch id=%d: %v", *branchID, err)
		return fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	return nil
}

func toResponse(s *domain.Shift) *ShiftResponse {
	return &ShiftResponse{
		ShiftID:    s.ID,
		StaffID:    s.StaffID,
		WorkDate:   s.WorkDate,
		Shift:      string(s.Bucket),
		Status:     string(s.Status),
		BranchID:   s.BranchID,
		ApprovedBy: s.ApprovedBy,
	}
}
