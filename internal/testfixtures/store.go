package testfixtures

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/keylock"
)

// Store is an in-memory stand-in for the salon tables.
// Writes made inside Do/DoSerializable are undone when the callback fails.
type Store struct {
	mu    sync.Mutex
	locks *keylock.Locker

	users        map[int64]domain.User
	branches     map[int64]domain.Branch
	services     map[int64]domain.Service
	shifts       map[int64]domain.Shift
	appointments map[int64]domain.Appointment
	serviceLines []domain.ServiceLine
	staffLines   []domain.StaffLine
	payments     map[int64]domain.Payment
	seq          int64

	failCommits int
	commitErr   error
	slotLocks   int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		locks:        keylock.New(),
		users:        make(map[int64]domain.User),
		branches:     make(map[int64]domain.Branch),
		services:     make(map[int64]domain.Service),
		shifts:       make(map[int64]domain.Shift),
		appointments: make(map[int64]domain.Appointment),
		payments:     make(map[int64]domain.Payment),
	}
}

// Counts row counts per table
type Counts struct {
	Appointments int
	ServiceLines int
	StaffLines   int
	Payments     int
	Shifts       int
}

// Counts returns the current row counts.
func (s *Store) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Counts{
		Appointments: len(s.appointments),
		ServiceLines: len(s.serviceLines),
		StaffLines:   len(s.staffLines),
		Payments:     len(s.payments),
		Shifts:       len(s.shifts),
	}
}

// SlotLocksTaken number of LockSlot calls so far.
func (s *Store) SlotLocksTaken() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slotLocks
}

// FailCommits makes the next n transactions roll back and return err instead of committing.
func (s *Store) FailCommits(n int, err error) {
	s.mu.Lock()
	s.failCommits = n
	s.commitErr = err
	s.mu.Unlock()
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// ----------------------------- transactions -----------------------------

type txKey struct{}

type txState struct {
	undo    []func()
	release []func()
}

func txFrom(ctx context.Context) *txState {
	st, _ := ctx.Value(txKey{}).(*txState)
	return st
}

// record registers an undo step for the current transaction; s.mu must be held.
func (s *Store) record(ctx context.Context, undo func()) {
	if st := txFrom(ctx); st != nil {
		st.undo = append(st.undo, undo)
	}
}

// Do runs fn in a transaction. Nested calls join the outer transaction.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFrom(ctx) != nil {
		return fn(ctx)
	}

	st := &txState{}
	defer func() {
		for i := len(st.release) - 1; i >= 0; i-- {
			st.release[i]()
		}
	}()

	err := fn(context.WithValue(ctx, txKey{}, st))

	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil && s.failCommits > 0 {
		s.failCommits--
		err = s.commitErr
	}
	if err != nil {
		for i := len(st.undo) - 1; i >= 0; i-- {
			st.undo[i]()
		}
		return err
	}
	return nil
}

// DoSerializable same as Do.
func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.Do(ctx, fn)
}

// DoReadOnly same as Do.
func (s *Store) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.Do(ctx, fn)
}

// ----------------------------- seeding -----------------------------

// AddUser inserts a user with the given role and returns its id.
func (s *Store) AddUser(role domain.Role, name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.users[id] = domain.User{ID: id, Username: name, FullName: name, Role: role}
	return id
}

// AddBranch inserts a branch and returns its id.
func (s *Store) AddBranch(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.branches[id] = domain.Branch{ID: id, Name: name}
	return id
}

// AddService inserts an active service and returns its id. duration 0 leaves it unset.
func (s *Store) AddService(name string, price string, duration int) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	svc := domain.Service{ID: id, Name: name, Slug: name, Price: decimal.RequireFromString(price), IsActive: true}
	if duration > 0 {
		svc.DurationMinutes = &duration
	}
	s.services[id] = svc
	return id
}

// DeactivateService marks the service inactive.
func (s *Store) DeactivateService(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc := s.services[id]
	svc.IsActive = false
	s.services[id] = svc
}

// AddShift inserts a shift record as is and returns its id.
func (s *Store) AddShift(sh domain.Shift) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh.ID = s.nextID()
	sh.WorkDate = domain.DateOnly(sh.WorkDate)
	s.shifts[sh.ID] = sh
	return sh.ID
}

// ApproveShift inserts an Approved shift for staffID at branchID.
func (s *Store) ApproveShift(staffID, branchID int64, date time.Time, bucket domain.ShiftBucket) int64 {
	return s.AddShift(domain.Shift{
		StaffID:  staffID,
		WorkDate: date,
		Bucket:   bucket,
		Status:   domain.ShiftApproved,
		BranchID: &branchID,
	})
}

// Shift returns a copy of the stored shift.
func (s *Store) Shift(id int64) (domain.Shift, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.shifts[id]
	return sh, ok
}

// AddAppointment inserts an appointment assigned to staffID with one line per service.
func (s *Store) AddAppointment(appt domain.Appointment, staffID int64, serviceIDs ...int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	appt.ID = s.nextID()
	appt.Date = domain.DateOnly(appt.Date)
	for _, serviceID := range serviceIDs {
		svc := s.services[serviceID]
		s.serviceLines = append(s.serviceLines, domain.ServiceLine{
			ID: s.nextID(), AppointmentID: appt.ID, ServiceID: serviceID, Quantity: 1, UnitPrice: svc.Price,
		})
	}
	s.staffLines = append(s.staffLines, domain.StaffLine{ID: s.nextID(), AppointmentID: appt.ID, StaffID: staffID})
	s.appointments[appt.ID] = appt
	return appt.ID
}

// Appointment returns a copy of the stored appointment with its lines.
func (s *Store) Appointment(id int64) (domain.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return domain.Appointment{}, false
	}
	return s.withLines(a), true
}

// Payments returns all payments.
func (s *Store) Payments() []domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		out = append(out, p)
	}
	return out
}

// withLines attaches service and staff lines; s.mu must be held.
func (s *Store) withLines(a domain.Appointment) domain.Appointment {
	a.Services = nil
	a.Staff = nil
	for _, l := range s.serviceLines {
		if l.AppointmentID == a.ID {
			if svc, ok := s.services[l.ServiceID]; ok && svc.DurationMinutes != nil {
				d := *svc.DurationMinutes
				l.ServiceDuration = &d
			}
			a.Services = append(a.Services, l)
		}
	}
	for _, l := range s.staffLines {
		if l.AppointmentID == a.ID {
			a.Staff = append(a.Staff, l)
		}
	}
	return a
}
