package get_available_staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/service/scheduling"
)

// UseCase use case для получения свободных мастеров на время
type UseCase struct {
	branchRepo BranchRepository
	resolver   AvailabilityResolver
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(branchRepo BranchRepository, resolver AvailabilityResolver, logger Logger) *UseCase {
	return &UseCase{
		branchRepo: branchRepo,
		resolver:   resolver,
		logger:     logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableStaff: validation failed: %v", err)
		return nil, err
	}

	// 2. Филиал должен существовать
	if _, err := uc.branchRepo.GetBranch(ctx, req.BranchID); err != nil {
		if errors.Is(err, catalogRepo.ErrBranchNotFound) {
			uc.logger.Warn("GetAvailableStaff: branch id=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("GetAvailableStaff: failed to get branch id=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	// 3. Свободные мастера
	candidates, err := uc.resolver.ResolveAvailability(ctx, req.BranchID, req.Date, req.StartTime, req.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableStaff: failed to resolve availability: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve availability: %v", ErrInternal, err)
	}

	resp := &Response{
		BranchID:        req.BranchID,
		Date:            domain.DateOnly(req.Date),
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Shift:           string(domain.ClassifyShift(req.StartTime)),
		Staff:           make([]StaffCandidate, len(candidates)),
	}
	for i, c := range candidates {
		resp.Staff[i] = StaffCandidate{StaffID: c.StaffID, DayLoad: c.DayLoad}
	}

	// 4. Кого назначит запись прямо сейчас
	if chosen, err := scheduling.SelectAssignee(candidates); err == nil {
		resp.SuggestedStaff = &chosen.StaffID
	}

	return resp, nil
}
