package testfixtures

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	paymentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/payment"
	shiftRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/shift"
	staffRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/staff"
)

// Appointments returns the appointment repository view of the store.
func (s *Store) Appointments() *AppointmentRepo { return &AppointmentRepo{s: s} }

// Shifts returns the shift repository view of the store.
func (s *Store) Shifts() *ShiftRepo { return &ShiftRepo{s: s} }

// Staff returns the staff directory view of the store.
func (s *Store) Staff() *StaffRepo { return &StaffRepo{s: s} }

// Catalog returns the catalog view of the store.
func (s *Store) Catalog() *CatalogRepo { return &CatalogRepo{s: s} }

// PaymentsRepo returns the payment repository view of the store.
func (s *Store) PaymentsRepo() *PaymentRepo { return &PaymentRepo{s: s} }

// ----------------------------- appointments -----------------------------

// AppointmentRepo mirrors storage/appointment.Repository.
type AppointmentRepo struct{ s *Store }

// LockSlot holds a per-slot lock until the surrounding transaction ends.
func (r *AppointmentRepo) LockSlot(ctx context.Context, branchID int64, date time.Time, bucket domain.ShiftBucket) error {
	st := txFrom(ctx)
	if st == nil {
		return appointmentRepo.ErrNotInTransaction
	}
	unlock := r.s.locks.Lock(domain.SlotLockKey(branchID, date, bucket))
	st.release = append(st.release, unlock)

	r.s.mu.Lock()
	r.s.slotLocks++
	r.s.mu.Unlock()
	return nil
}

func (r *AppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	appt.ID = r.s.nextID()
	appt.CreatedAt = ReferenceTime
	appt.UpdatedAt = ReferenceTime
	stored := *appt
	stored.Date = domain.DateOnly(stored.Date)
	stored.Services, stored.Staff = nil, nil
	r.s.appointments[appt.ID] = stored

	id := appt.ID
	r.s.record(ctx, func() { delete(r.s.appointments, id) })
	return appt, nil
}

func (r *AppointmentRepo) AddServiceLine(ctx context.Context, line *domain.ServiceLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, l := range r.s.serviceLines {
		if l.AppointmentID == line.AppointmentID && l.ServiceID == line.ServiceID {
			return appointmentRepo.ErrDuplicateLine
		}
	}
	line.ID = r.s.nextID()
	r.s.serviceLines = append(r.s.serviceLines, *line)

	id := line.ID
	r.s.record(ctx, func() {
		r.s.serviceLines = removeServiceLine(r.s.serviceLines, id)
	})
	return nil
}

func (r *AppointmentRepo) AddStaffLine(ctx context.Context, line *domain.StaffLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, l := range r.s.staffLines {
		if l.AppointmentID == line.AppointmentID && l.StaffID == line.StaffID {
			return appointmentRepo.ErrDuplicateLine
		}
	}
	line.ID = r.s.nextID()
	r.s.staffLines = append(r.s.staffLines, *line)

	id := line.ID
	r.s.record(ctx, func() {
		r.s.staffLines = removeStaffLine(r.s.staffLines, id)
	})
	return nil
}

func (r *AppointmentRepo) RecalcTotal(ctx context.Context, appointmentID int64) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	appt, ok := r.s.appointments[appointmentID]
	if !ok {
		return decimal.Zero, appointmentRepo.ErrAppointmentNotFound
	}
	previous := appt.TotalPrice

	withLines := r.s.withLines(appt)
	appt.TotalPrice = withLines.RecalcTotal()
	r.s.appointments[appointmentID] = appt

	r.s.record(ctx, func() {
		a := r.s.appointments[appointmentID]
		a.TotalPrice = previous
		r.s.appointments[appointmentID] = a
	})
	return appt.TotalPrice, nil
}

func (r *AppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	appt, ok := r.s.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	full := r.s.withLines(appt)
	return &full, nil
}

func (r *AppointmentRepo) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*domain.Appointment, 0)
	for _, a := range r.s.appointments {
		if filter.CustomerID != nil && a.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.BranchID != nil && a.BranchID != *filter.BranchID {
			continue
		}
		if filter.Date != nil && !a.Date.Equal(domain.DateOnly(*filter.Date)) {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		full := r.s.withLines(a)
		if filter.StaffID != nil && !full.HasStaff(*filter.StaffID) {
			continue
		}
		full.Services, full.Staff = nil, nil
		out = append(out, &full)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].StartTime.IsAfter(out[j].StartTime)
	})
	return out, nil
}

func (r *AppointmentRepo) BusySlots(_ context.Context, date time.Time, staffIDs []int64) ([]domain.BusySlot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	wanted := make(map[int64]bool, len(staffIDs))
	for _, id := range staffIDs {
		wanted[id] = true
	}

	day := domain.DateOnly(date)
	out := make([]domain.BusySlot, 0)
	for _, a := range r.s.appointments {
		if !a.Date.Equal(day) || !a.Status.IsCommitted() {
			continue
		}
		full := r.s.withLines(a)
		for _, l := range full.Staff {
			if wanted[l.StaffID] {
				out = append(out, domain.BusySlot{
					AppointmentID:   a.ID,
					StaffID:         l.StaffID,
					StartTime:       a.StartTime,
					DurationMinutes: full.EffectiveDuration(),
				})
			}
		}
	}
	return out, nil
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	appt, ok := r.s.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	previous := appt.Status
	appt.Status = status
	r.s.appointments[id] = appt

	r.s.record(ctx, func() {
		a := r.s.appointments[id]
		a.Status = previous
		r.s.appointments[id] = a
	})
	return nil
}

// ----------------------------- shifts -----------------------------

// ShiftRepo mirrors storage/shift.Repository.
type ShiftRepo struct{ s *Store }

func (r *ShiftRepo) Create(ctx context.Context, sh *domain.Shift) (*domain.Shift, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.shifts {
		if existing.Key() == sh.Key() {
			return nil, shiftRepo.ErrDuplicateShift
		}
	}
	sh.ID = r.s.nextID()
	sh.WorkDate = domain.DateOnly(sh.WorkDate)
	sh.CreatedAt = ReferenceTime
	r.s.shifts[sh.ID] = *sh

	id := sh.ID
	r.s.record(ctx, func() { delete(r.s.shifts, id) })
	return sh, nil
}

func (r *ShiftRepo) GetByID(_ context.Context, id int64) (*domain.Shift, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sh, ok := r.s.shifts[id]
	if !ok {
		return nil, shiftRepo.ErrShiftNotFound
	}
	return &sh, nil
}

func (r *ShiftRepo) GetByKey(_ context.Context, key domain.ShiftKey) (*domain.Shift, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key.WorkDate = domain.DateOnly(key.WorkDate)
	for _, sh := range r.s.shifts {
		if sh.Key() == key {
			return &sh, nil
		}
	}
	return nil, shiftRepo.ErrShiftNotFound
}

func (r *ShiftRepo) List(_ context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*domain.Shift, 0)
	for _, sh := range r.s.shifts {
		sh := sh
		if filter.StaffID != nil && sh.StaffID != *filter.StaffID {
			continue
		}
		if filter.BranchID != nil && (sh.BranchID == nil || *sh.BranchID != *filter.BranchID) {
			continue
		}
		if filter.Status != nil && sh.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && sh.WorkDate.Before(domain.DateOnly(*filter.StartDate)) {
			continue
		}
		if filter.EndDate != nil && sh.WorkDate.After(domain.DateOnly(*filter.EndDate)) {
			continue
		}
		out = append(out, &sh)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].WorkDate.Equal(out[j].WorkDate) {
			return out[i].WorkDate.Before(out[j].WorkDate)
		}
		if out[i].Bucket != out[j].Bucket {
			return out[i].Bucket < out[j].Bucket
		}
		return out[i].StaffID < out[j].StaffID
	})
	return out, nil
}

func (r *ShiftRepo) Update(ctx context.Context, sh *domain.Shift) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	previous, ok := r.s.shifts[sh.ID]
	if !ok {
		return shiftRepo.ErrShiftNotFound
	}
	updated := previous
	updated.Status = sh.Status
	updated.BranchID = sh.BranchID
	updated.ApprovedBy = sh.ApprovedBy
	r.s.shifts[sh.ID] = updated

	r.s.record(ctx, func() { r.s.shifts[previous.ID] = previous })
	return nil
}

func (r *ShiftRepo) Reopen(ctx context.Context, id int64) (*domain.Shift, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	previous, ok := r.s.shifts[id]
	if !ok || previous.Status != domain.ShiftRejected {
		return nil, shiftRepo.ErrShiftNotFound
	}
	reopened := previous
	reopened.Status = domain.ShiftPending
	reopened.BranchID = nil
	reopened.ApprovedBy = nil
	r.s.shifts[id] = reopened

	r.s.record(ctx, func() { r.s.shifts[id] = previous })
	return &reopened, nil
}

// ----------------------------- staff & catalog -----------------------------

// StaffRepo mirrors storage/staff.Repository.
type StaffRepo struct{ s *Store }

func (r *StaffRepo) OnShift(_ context.Context, branchID int64, date time.Time, bucket domain.ShiftBucket) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	day := domain.DateOnly(date)
	seen := make(map[int64]bool)
	out := make([]int64, 0)
	for _, sh := range r.s.shifts {
		if sh.Status != domain.ShiftApproved || sh.Bucket != bucket || !sh.WorkDate.Equal(day) {
			continue
		}
		if sh.BranchID == nil || *sh.BranchID != branchID {
			continue
		}
		if u, ok := r.s.users[sh.StaffID]; !ok || !u.IsStaff() || seen[sh.StaffID] {
			continue
		}
		seen[sh.StaffID] = true
		out = append(out, sh.StaffID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r *StaffRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, staffRepo.ErrUserNotFound
	}
	return &u, nil
}

// CatalogRepo mirrors storage/catalog.Repository.
type CatalogRepo struct{ s *Store }

func (r *CatalogRepo) GetService(_ context.Context, id int64) (*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	svc, ok := r.s.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return &svc, nil
}

func (r *CatalogRepo) GetBranch(_ context.Context, id int64) (*domain.Branch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.branches[id]
	if !ok {
		return nil, catalogRepo.ErrBranchNotFound
	}
	return &b, nil
}

// ----------------------------- payments -----------------------------

// PaymentRepo mirrors storage/payment.Repository.
type PaymentRepo struct{ s *Store }

func (r *PaymentRepo) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.nextID()
	p.CreatedAt = ReferenceTime
	r.s.payments[p.ID] = *p

	id := p.ID
	r.s.record(ctx, func() { delete(r.s.payments, id) })
	return p, nil
}

func (r *PaymentRepo) GetByAppointmentID(_ context.Context, appointmentID int64) (*domain.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var found *domain.Payment
	for _, p := range r.s.payments {
		p := p
		if p.AppointmentID == appointmentID && (found == nil || p.ID > found.ID) {
			found = &p
		}
	}
	if found == nil {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return found, nil
}

func (r *PaymentRepo) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.payments[id]
	if !ok {
		return paymentRepo.ErrPaymentNotFound
	}
	previous := p.Status
	p.Status = status
	r.s.payments[id] = p

	r.s.record(ctx, func() {
		q := r.s.payments[id]
		q.Status = previous
		r.s.payments[id] = q
	})
	return nil
}

func removeServiceLine(lines []domain.ServiceLine, id int64) []domain.ServiceLine {
	out := lines[:0]
	for _, l := range lines {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}

func removeStaffLine(lines []domain.StaffLine, id int64) []domain.StaffLine {
	out := lines[:0]
	for _, l := range lines {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}
