package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Candidate мастер, который может взять запись, и его загрузка за день в минутах
type Candidate struct {
	StaffID int64
	DayLoad int
}

// Resolver определяет, какие мастера свободны на запрошенное время
type Resolver struct {
	staff        StaffDirectory
	appointments AppointmentReader
	logger       Logger
}

// NewResolver создает новый экземпляр Resolver
func NewResolver(staff StaffDirectory, appointments AppointmentReader, logger Logger) *Resolver {
	return &Resolver{
		staff:        staff,
		appointments: appointments,
		logger:       logger,
	}
}

// ResolveAvailability возвращает мастеров филиала с подтвержденной сменой нужного типа,
// у которых нет активной записи, пересекающейся с [start, start+duration)
// Пустой результат - нормальный исход ("нет свободных мастеров")
func (r *Resolver) ResolveAvailability(
	ctx context.Context,
	branchID int64,
	date time.Time,
	start types.TimeString,
	durationMinutes int,
) ([]Candidate, error) {
	bucket := domain.ClassifyShift(start)

	day, err := r.LoadDay(ctx, branchID, date, bucket)
	if err != nil {
		return nil, err
	}

	candidates := day.Candidates(start, durationMinutes)

	r.logger.Info("ResolveAvailability: branch=%d date=%s time=%s bucket=%s on_shift=%d eligible=%d",
		branchID, date.Format(domain.DateFormat), start, bucket, len(day.StaffIDs), len(candidates))

	return candidates, nil
}

// EligibleStaffIDs то же, что ResolveAvailability, но только ID мастеров
func (r *Resolver) EligibleStaffIDs(
	ctx context.Context,
	branchID int64,
	date time.Time,
	start types.TimeString,
	durationMinutes int,
) ([]int64, error) {
	candidates, err := r.ResolveAvailability(ctx, branchID, date, start, durationMinutes)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(candidates))
	for i, c := range candidates {
		ids[i] = c.StaffID
	}
	return ids, nil
}

// LoadDay читает смены и занятость мастеров филиала на дату для одной смены
// Результат позволяет проверить много стартовых времен без повторных запросов
func (r *Resolver) LoadDay(ctx context.Context, branchID int64, date time.Time, bucket domain.ShiftBucket) (*DaySchedule, error) {
	staffIDs, err := r.staff.OnShift(ctx, branchID, date, bucket)
	if err != nil {
		r.logger.Error("LoadDay: failed to list staff on shift branch=%d date=%s bucket=%s: %v",
			branchID, date.Format(domain.DateFormat), bucket, err)
		return nil, fmt.Errorf("%w: LoadDay - staff on shift: %w", ErrInternal, err)
	}

	day := &DaySchedule{
		Bucket:   bucket,
		StaffIDs: staffIDs,
		busy:     make(map[int64][]domain.BusySlot, len(staffIDs)),
	}

	if len(staffIDs) == 0 {
		return day, nil
	}

	slots, err := r.appointments.BusySlots(ctx, date, staffIDs)
	if err != nil {
		r.logger.Error("LoadDay: failed to load busy slots date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: LoadDay - busy slots: %w", ErrInternal, err)
	}

	for _, slot := range slots {
		day.busy[slot.StaffID] = append(day.busy[slot.StaffID], slot)
	}

	return day, nil
}

// DaySchedule мастера на смене и их активные записи за день
type DaySchedule struct {
	Bucket   domain.ShiftBucket
	StaffIDs []int64
	busy     map[int64][]domain.BusySlot
}

// Candidates мастера без пересечений с [start, start+duration), в порядке StaffIDs
func (d *DaySchedule) Candidates(start types.TimeString, durationMinutes int) []Candidate {
	candidates := make([]Candidate, 0, len(d.StaffIDs))

	for _, staffID := range d.StaffIDs {
		free := true
		load := 0
		for _, slot := range d.busy[staffID] {
			load += slot.DurationMinutes
			if domain.Overlaps(slot.StartTime, slot.DurationMinutes, start, durationMinutes) {
				free = false
			}
		}
		if free {
			candidates = append(candidates, Candidate{StaffID: staffID, DayLoad: load})
		}
	}

	return candidates
}
