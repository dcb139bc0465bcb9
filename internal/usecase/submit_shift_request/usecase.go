package submit_shift_request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	shiftRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/shift"
	staffRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/staff"
)

// UseCase use case для подачи мастером заявки на смену
type UseCase struct {
	userRepo     UserRepository
	shiftRepo    ShiftRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	shiftRepo ShiftRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}

	return &UseCase{
		userRepo:     userRepo,
		shiftRepo:    shiftRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case подачи заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitShiftRequest: staff=%d, date=%s, shift=%s",
		req.StaffID, req.WorkDate.Format(domain.DateFormat), req.Shift)

	// 1. Валидация входных данных
	bucket, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SubmitShiftRequest: validation failed: %v", err)
		return nil, err
	}

	// 2. Заявку подает мастер
	user, err := uc.userRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrUserNotFound) {
			uc.logger.Warn("SubmitShiftRequest: user id=%d not found", req.StaffID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("SubmitShiftRequest: failed to get user id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.IsStaff() {
		uc.logger.Warn("SubmitShiftRequest: user id=%d has role %s", req.StaffID, user.Role)
		return nil, ErrNotStaff
	}

	// 3. Окно самозаписи считается по календарю салона
	if err := validateWindow(req.WorkDate, uc.timeProvider.Now().In(uc.location)); err != nil {
		uc.logger.Warn("SubmitShiftRequest: %v", err)
		return nil, err
	}

	key := domain.ShiftKey{StaffID: req.StaffID, WorkDate: domain.DateOnly(req.WorkDate), Bucket: bucket}

	var (
		result   *domain.Shift
		reopened bool
	)

	// 4. Проверка дубликата и запись в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := uc.shiftRepo.GetByKey(txCtx, key)
		if err != nil && !errors.Is(err, shiftRepo.ErrShiftNotFound) {
			uc.logger.Error("SubmitShiftRequest: failed to get existing shift: %v", err)
			return fmt.Errorf("%w: failed to get existing shift: %v", ErrInternal, err)
		}

		// 4.1. Уже есть активная заявка или подтвержденная смена
		if existing != nil && existing.BlocksResubmission() {
			uc.logger.Warn("SubmitShiftRequest: shift id=%d already %s", existing.ID, existing.Status)
			return ErrDuplicateRequest
		}

		// 4.2. Отклоненная заявка подается заново
		if existing != nil {
			result, err = uc.shiftRepo.Reopen(txCtx, existing.ID)
			if err != nil {
				uc.logger.Error("SubmitShiftRequest: failed to reopen shift id=%d: %v", existing.ID, err)
				return fmt.Errorf("%w: failed to reopen shift: %v", ErrInternal, err)
			}
			reopened = true
			return nil
		}

		// 4.3. Новая заявка
		result, err = uc.shiftRepo.Create(txCtx, &domain.Shift{
			StaffID:  key.StaffID,
			WorkDate: key.WorkDate,
			Bucket:   key.Bucket,
			Status:   domain.ShiftPending,
		})
		if errors.Is(err, shiftRepo.ErrDuplicateShift) {
			uc.logger.Warn("SubmitShiftRequest: concurrent request for the same shift")
			return ErrDuplicateRequest
		}
		if err != nil {
			uc.logger.Error("SubmitShiftRequest: failed to create shift: %v", err)
			return fmt.Errorf("%w: failed to create shift: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitShiftRequest: shift id=%d is pending (reopened=%t)", result.ID, reopened)

	return &Response{
		ShiftID:   result.ID,
		StaffID:   result.StaffID,
		WorkDate:  result.WorkDate,
		Shift:     string(result.Bucket),
		Status:    string(result.Status),
		Reopened:  reopened,
		CreatedAt: result.CreatedAt,
	}, nil
}
