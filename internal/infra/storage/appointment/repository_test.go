package appointment

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func newRepo(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), db, mock
}

func txContext(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock) context.Context {
	t.Helper()
	mock.ExpectBegin()
	tx, err := dbmetrics.Wrap(db, nil).BeginTx(context.Background(), nil)
	require.NoError(t, err)
	return dbmetrics.WithTx(context.Background(), tx)
}

func TestRepository_LockSlot_RequiresTransaction(t *testing.T) {
	repo, _, _ := newRepo(t)

	err := repo.LockSlot(context.Background(), 1, time.Now(), domain.ShiftMorning)
	assert.ErrorIs(t, err, ErrNotInTransaction)
}

func TestRepository_LockSlot(t *testing.T) {
	repo, db, mock := newRepo(t)
	ctx := txContext(t, db, mock)

	date := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs("slot:1:2026-10-21:MORNING").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.LockSlot(ctx, 1, date, domain.ShiftMorning))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments (customer_id,branch_id,appointment_date,appointment_time,duration_minutes,status,total_price,note)")).
		WithArgs(int64(5), int64(1), sqlmock.AnyArg(), "09:00", 45, "PENDING", sqlmock.AnyArg(), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(12), now, now))

	appt, err := repo.Create(context.Background(), &domain.Appointment{
		CustomerID:      5,
		BranchID:        1,
		Date:            time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC),
		StartTime:       types.MustTimeString("09:00"),
		DurationMinutes: 45,
		Status:          domain.StatusPending,
		TotalPrice:      decimal.NewFromInt(150000),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12), appt.ID)
	assert.Equal(t, "BK000012", appt.BookingCode())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_KeepsDriverError(t *testing.T) {
	repo, _, mock := newRepo(t)

	pqErr := &pq.Error{Code: "40001"}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).WillReturnError(pqErr)

	_, err := repo.Create(context.Background(), &domain.Appointment{StartTime: types.MustTimeString("09:00")})

	assert.ErrorIs(t, err, ErrExecQuery)
	var target *pq.Error
	assert.True(t, errors.As(err, &target))
}

func TestRepository_AddStaffLine_Duplicate(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointment_staff (appointment_id,staff_id)")).
		WithArgs(int64(12), int64(3)).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.AddStaffLine(context.Background(), &domain.StaffLine{AppointmentID: 12, StaffID: 3})
	assert.ErrorIs(t, err, ErrDuplicateLine)
}

func TestRepository_RecalcTotal(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE appointments SET total_price = (SELECT COALESCE(SUM(quantity * unit_price), 0) FROM appointment_services WHERE appointment_id = $1)",
	)).
		WithArgs(int64(12), int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"total_price"}).AddRow("310000.50"))

	total, err := repo.RecalcTotal(context.Background(), 12)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("310000.50").Equal(total))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RecalcTotal_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE appointments SET total_price")).
		WillReturnRows(sqlmock.NewRows([]string{"total_price"}))

	_, err := repo.RecalcTotal(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_BusySlots(t *testing.T) {
	repo, _, mock := newRepo(t)

	date := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments a JOIN appointment_staff ast ON ast.appointment_id = a.id")).
		WithArgs(date, "PENDING", "CONFIRMED", "IN_PROGRESS", int64(3), int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "staff_id", "appointment_time", "duration"}).
			AddRow(int64(7), int64(3), "09:00:00", 60).
			AddRow(int64(8), int64(4), "13:30:00", 90))

	slots, err := repo.BusySlots(context.Background(), date, []int64{3, 4})

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, domain.BusySlot{AppointmentID: 7, StaffID: 3, StartTime: "09:00", DurationMinutes: 60}, slots[0])
	assert.Equal(t, types.TimeString("13:30"), slots[1].StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_BusySlots_NoStaff(t *testing.T) {
	repo, _, mock := newRepo(t)

	slots, err := repo.BusySlots(context.Background(), time.Now(), nil)

	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_LoadsLines(t *testing.T) {
	repo, _, mock := newRepo(t)

	now := time.Now()
	date := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1")).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows(appointmentColumns).
			AddRow(int64(12), int64(5), int64(1), date, "09:00:00", 60, "PENDING", "150000.00", nil, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM appointment_services aps LEFT JOIN services s")).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "appointment_id", "service_id", "quantity", "unit_price", "duration_minutes"}).
			AddRow(int64(1), int64(12), int64(2), 1, "150000.00", nil))
	mock.ExpectQuery(regexp.QuoteMeta("FROM appointment_staff WHERE appointment_id = $1")).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "appointment_id", "staff_id"}).AddRow(int64(1), int64(12), int64(3)))

	appt, err := repo.GetByID(context.Background(), 12)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, appt.Status)
	assert.Nil(t, appt.Note)
	require.Len(t, appt.Services, 1)
	assert.Nil(t, appt.Services[0].ServiceDuration)
	assert.Equal(t, 60, appt.EffectiveDuration())
	assert.True(t, appt.HasStaff(3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1")).
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $1")).
		WithArgs("CANCELED", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 9, domain.StatusCanceled)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
