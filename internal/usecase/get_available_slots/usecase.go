package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/service/scheduling"
)

// UseCase use case для получения сетки слотов с числом свободных мастеров
type UseCase struct {
	catalogRepo  CatalogRepository
	days         DayLoader
	hours        WorkingHours
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	days DayLoader,
	hours WorkingHours,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}

	return &UseCase{
		catalogRepo:  catalogRepo,
		days:         days,
		hours:        hours,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: branch=%d, service=%d, date=%s",
		req.BranchID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.location)

	// 2. Дата не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Филиал
	if _, err := uc.catalogRepo.GetBranch(ctx, req.BranchID); err != nil {
		if errors.Is(err, catalogRepo.ErrBranchNotFound) {
			uc.logger.Warn("GetAvailableSlots: branch id=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get branch id=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	// 4. Услуга (длительность слота)
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}
	duration := service.Duration()

	// 5. Генерируем временные слоты
	timeSlots := generateTimeSlots(uc.hours, duration, req.Date, now)

	// 6. Для каждого слота считаем свободных мастеров; день грузится один раз на смену
	days := make(map[domain.ShiftBucket]*scheduling.DaySchedule, len(domain.ShiftBuckets))
	slots := make([]Slot, 0, len(timeSlots))

	for _, start := range timeSlots {
		bucket := domain.ClassifyShift(start)

		day, ok := days[bucket]
		if !ok {
			day, err = uc.days.LoadDay(ctx, req.BranchID, req.Date, bucket)
			if err != nil {
				uc.logger.Error("GetAvailableSlots: failed to load %s schedule: %v", bucket, err)
				return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
			}
			days[bucket] = day
		}

		slots = append(slots, toSlot(domain.AvailableSlot{
			StartTime:       start,
			DurationMinutes: duration,
			Bucket:          bucket,
			FreeStaff:       len(day.Candidates(start, duration)),
			OnShift:         len(day.StaffIDs),
		}))
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for branch=%d, service=%d, date=%s",
		len(slots), req.BranchID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      domain.DateOnly(req.Date),
		BranchID:  req.BranchID,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}
