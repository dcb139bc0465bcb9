package get_staff_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	staffRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/staff"
)

const daysInWeek = 7

// UseCase use case для просмотра недельного расписания мастера
type UseCase struct {
	userRepo     UserRepository
	shiftRepo    ShiftRepository
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(userRepo UserRepository, shiftRepo ShiftRepository, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.Local
	}

	return &UseCase{
		userRepo:     userRepo,
		shiftRepo:    shiftRepo,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute возвращает все записи расписания мастера (в любом статусе) за неделю
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.StaffID <= 0 || req.RequesterID <= 0 {
		return nil, fmt.Errorf("%w: staffID and requesterID must be positive", ErrInvalidInput)
	}

	// 1. Свое расписание смотрит мастер, чужое - только администратор
	if req.RequesterID != req.StaffID {
		requester, err := uc.getUser(ctx, req.RequesterID)
		if err != nil {
			return nil, err
		}
		if !requester.IsAdmin() {
			uc.logger.Warn("GetStaffSchedule: user=%d cannot see schedule of staff=%d", req.RequesterID, req.StaffID)
			return nil, ErrAccessDenied
		}
	}

	staff, err := uc.getUser(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}
	if !staff.IsStaff() {
		uc.logger.Warn("GetStaffSchedule: user=%d has role %s", req.StaffID, staff.Role)
		return nil, ErrNotStaff
	}

	// 2. Границы недели
	anchor := req.Start
	if anchor.IsZero() {
		anchor = uc.timeProvider.Now().In(uc.location)
	}
	weekStart := domain.WeekStart(anchor)
	weekEnd := weekStart.AddDate(0, 0, daysInWeek-1)

	uc.logger.Info("GetStaffSchedule: staff=%d, week=%s..%s",
		req.StaffID, weekStart.Format(domain.DateFormat), weekEnd.Format(domain.DateFormat))

	// 3. Записи за неделю
	shifts, err := uc.shiftRepo.List(ctx, domain.ShiftFilter{
		StaffID:   &req.StaffID,
		StartDate: &weekStart,
		EndDate:   &weekEnd,
	})
	if err != nil {
		uc.logger.Error("GetStaffSchedule: failed to list shifts: %v", err)
		return nil, fmt.Errorf("%w: failed to list shifts: %v", ErrInternal, err)
	}

	// 4. Раскладываем по дням, смены внутри дня в порядке утро-день-вечер
	resp := &Response{
		StaffID:   req.StaffID,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Days:      make([]Day, daysInWeek),
	}
	for i := range resp.Days {
		resp.Days[i] = Day{Date: weekStart.AddDate(0, 0, i), Shifts: []ShiftEntry{}}
	}

	for _, bucket := range domain.ShiftBuckets {
		for _, s := range shifts {
			if s.Bucket != bucket {
				continue
			}
			idx := int(domain.DateOnly(s.WorkDate).Sub(weekStart).Hours() / 24)
			if idx < 0 || idx >= daysInWeek {
				continue
			}
			resp.Days[idx].Shifts = append(resp.Days[idx].Shifts, ShiftEntry{
				ShiftID:  s.ID,
				Shift:    string(s.Bucket),
				Status:   string(s.Status),
				BranchID: s.BranchID,
			})
		}
	}

	return resp, nil
}

func (uc *UseCase) getUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrUserNotFound) {
			uc.logger.Warn("GetStaffSchedule: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("GetStaffSchedule: failed to get user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return user, nil
}
