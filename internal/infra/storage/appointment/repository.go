package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"id",
	"customer_id",
	"branch_id",
	"appointment_date",
	"appointment_time",
	"duration_minutes",
	"status",
	"total_price",
	"note",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockSlot берет advisory lock на (филиал, дата, смена) до конца текущей транзакции
// Все бронирования одного слота выполняются последовательно, в том числе между инстансами сервиса
func (r *Repository) LockSlot(ctx context.Context, branchID int64, date time.Time, bucket domain.ShiftBucket) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNotInTransaction
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	key := domain.SlotLockKey(branchID, date, bucket)
	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("%w: LockSlot - acquire %s: %w", ErrExecQuery, key, err)
	}

	return nil
}

// Create создает запись (без строк услуг и мастеров)
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_id",
			"branch_id",
			"appointment_date",
			"appointment_time",
			"duration_minutes",
			"status",
			"total_price",
			"note",
		).
		Values(
			appt.CustomerID,
			appt.BranchID,
			domain.DateOnly(appt.Date),
			appt.StartTime,
			appt.DurationMinutes,
			appt.Status,
			appt.TotalPrice,
			appt.Note,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// AddServiceLine добавляет услугу в запись
func (r *Repository) AddServiceLine(ctx context.Context, line *domain.ServiceLine) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointment_services").
		Columns("appointment_id", "service_id", "quantity", "unit_price").
		Values(line.AppointmentID, line.ServiceID, line.Quantity, line.UnitPrice).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddServiceLine - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&line.ID); err != nil {
		if psqlbuilder.IsUniqueViolation(err) {
			return ErrDuplicateLine
		}
		return fmt.Errorf("%w: AddServiceLine - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// AddStaffLine назначает мастера на запись
func (r *Repository) AddStaffLine(ctx context.Context, line *domain.StaffLine) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointment_staff").
		Columns("appointment_id", "staff_id").
		Values(line.AppointmentID, line.StaffID).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddStaffLine - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&line.ID); err != nil {
		if psqlbuilder.IsUniqueViolation(err) {
			return ErrDuplicateLine
		}
		return fmt.Errorf("%w: AddStaffLine - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// RecalcTotal пересчитывает total_price как сумму quantity * unit_price по строкам услуг
// Вызывается после любого изменения строк услуг
func (r *Repository) RecalcTotal(ctx context.Context, appointmentID int64) (decimal.Decimal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("total_price", squirrel.Expr(
			"(SELECT COALESCE(SUM(quantity * unit_price), 0) FROM appointment_services WHERE appointment_id = ?)",
			appointmentID,
		)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appointmentID}).
		Suffix("RETURNING total_price").
		ToSql()

	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: RecalcTotal - build update query: %v", ErrBuildQuery, err)
	}

	var total decimal.Decimal
	err = executor.QueryRowContext(ctx, query, args...).Scan(&total)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, ErrAppointmentNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: RecalcTotal - execute update: %w", ErrExecQuery, err)
	}

	return total, nil
}

// GetByID получает запись по ID вместе со строками услуг и мастеров
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id})

	// Смена статуса идет в транзакции - блокируем строку
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	if appt.Services, err = r.serviceLines(ctx, executor, id); err != nil {
		return nil, err
	}
	if appt.Staff, err = r.staffLines(ctx, executor, id); err != nil {
		return nil, err
	}

	return appt, nil
}

// List получает записи по фильтру (без строк услуг)
// Фильтр по мастеру идет через appointment_staff
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("appointment_date DESC, appointment_time DESC")

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(
			"id IN (SELECT appointment_id FROM appointment_staff WHERE staff_id = ?)", *filter.StaffID,
		)
	}
	if filter.BranchID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"branch_id": *filter.BranchID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": domain.DateOnly(*filter.Date)})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// BusySlots возвращает занятые интервалы мастеров staffIDs на дату date
// Учитываются только записи в статусах PENDING, CONFIRMED, IN_PROGRESS (в любом филиале)
// Длительность: сумма длительностей услуг (60, если у услуги не задана), без услуг - duration_minutes записи
func (r *Repository) BusySlots(ctx context.Context, date time.Time, staffIDs []int64) ([]domain.BusySlot, error) {
	if len(staffIDs) == 0 {
		return []domain.BusySlot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"a.id",
		"ast.staff_id",
		"a.appointment_time",
		fmt.Sprintf(
			"CASE WHEN COUNT(aps.id) = 0 THEN a.duration_minutes ELSE SUM(COALESCE(s.duration_minutes, %d)) END",
			domain.DefaultServiceDurationMinutes,
		),
	).
		From("appointments a").
		Join("appointment_staff ast ON ast.appointment_id = a.id").
		LeftJoin("appointment_services aps ON aps.appointment_id = a.id").
		LeftJoin("services s ON s.id = aps.service_id").
		Where(squirrel.Eq{"a.appointment_date": domain.DateOnly(date)}).
		Where(squirrel.Eq{"a.status": statusStrings(domain.CommittedStatuses)}).
		Where(squirrel.Eq{"ast.staff_id": staffIDs}).
		GroupBy("a.id", "ast.staff_id", "a.appointment_time", "a.duration_minutes").
		OrderBy("ast.staff_id ASC", "a.appointment_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: BusySlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BusySlots - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.BusySlot, 0)
	for rows.Next() {
		var slot domain.BusySlot
		if err := rows.Scan(&slot.AppointmentID, &slot.StaffID, &slot.StartTime, &slot.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: BusySlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BusySlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) serviceLines(ctx context.Context, executor DBExecutor, appointmentID int64) ([]domain.ServiceLine, error) {
	query, args, err := psqlbuilder.Select(
		"aps.id",
		"aps.appointment_id",
		"aps.service_id",
		"aps.quantity",
		"aps.unit_price",
		"s.duration_minutes",
	).
		From("appointment_services aps").
		LeftJoin("services s ON s.id = aps.service_id").
		Where(squirrel.Eq{"aps.appointment_id": appointmentID}).
		OrderBy("aps.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: serviceLines - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: serviceLines - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	lines := make([]domain.ServiceLine, 0)
	for rows.Next() {
		var line domain.ServiceLine
		var duration sql.NullInt64
		if err := rows.Scan(&line.ID, &line.AppointmentID, &line.ServiceID, &line.Quantity, &line.UnitPrice, &duration); err != nil {
			return nil, fmt.Errorf("%w: serviceLines - scan row: %v", ErrScanRow, err)
		}
		if duration.Valid {
			d := int(duration.Int64)
			line.ServiceDuration = &d
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: serviceLines - rows error: %v", ErrScanRow, err)
	}

	return lines, nil
}

func (r *Repository) staffLines(ctx context.Context, executor DBExecutor, appointmentID int64) ([]domain.StaffLine, error) {
	query, args, err := psqlbuilder.Select("id", "appointment_id", "staff_id").
		From("appointment_staff").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: staffLines - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: staffLines - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	lines := make([]domain.StaffLine, 0)
	for rows.Next() {
		var line domain.StaffLine
		if err := rows.Scan(&line.ID, &line.AppointmentID, &line.StaffID); err != nil {
			return nil, fmt.Errorf("%w: staffLines - scan row: %v", ErrScanRow, err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: staffLines - rows error: %v", ErrScanRow, err)
	}

	return lines, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var note sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.CustomerID,
		&appt.BranchID,
		&appt.Date,
		&appt.StartTime,
		&appt.DurationMinutes,
		&appt.Status,
		&appt.TotalPrice,
		&note,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if note.Valid {
		appt.Note = &note.String
	}
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func statusStrings(statuses []domain.AppointmentStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
