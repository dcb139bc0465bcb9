package shift

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

var shiftColumns = []string{
	"id",
	"staff_id",
	"work_date",
	"shift",
	"status",
	"branch_id",
	"approved_by",
	"created_at",
}

// Repository репозиторий смен мастеров (staff_schedules)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись смены
// Нарушение уникальности (staff_id, work_date, shift) возвращается как ErrDuplicateShift
func (r *Repository) Create(ctx context.Context, s *domain.Shift) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_schedules").
		Columns("staff_id", "work_date", "shift", "status", "branch_id", "approved_by").
		Values(s.StaffID, domain.DateOnly(s.WorkDate), s.Bucket, s.Status, s.BranchID, s.ApprovedBy).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt); err != nil {
		if psqlbuilder.IsUniqueViolation(err) {
			return nil, ErrDuplicateShift
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time

	return s, nil
}

// GetByID получает смену по ID
// В транзакции строка блокируется (FOR UPDATE) - решение администратора применяется один раз
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(shiftColumns...).
		From("staff_schedules").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanShift(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan shift: %w", ErrScanRow, err)
	}

	return s, nil
}

// GetByKey получает смену по тройке (мастер, дата, смена)
func (r *Repository) GetByKey(ctx context.Context, key domain.ShiftKey) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(shiftColumns...).
		From("staff_schedules").
		Where(squirrel.Eq{
			"staff_id":  key.StaffID,
			"work_date": domain.DateOnly(key.WorkDate),
			"shift":     key.Bucket,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanShift(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan shift: %w", ErrScanRow, err)
	}

	return s, nil
}

// List получает смены по фильтру, сортировка по дате, смене и мастеру
// В транзакции строки блокируются (используется массовым подтверждением)
func (r *Repository) List(ctx context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(shiftColumns...).
		From("staff_schedules").
		OrderBy("work_date ASC", "shift ASC", "staff_id ASC")

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.BranchID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"branch_id": *filter.BranchID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"work_date": domain.DateOnly(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"work_date": domain.DateOnly(*filter.EndDate)})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
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

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return shifts, nil
}

// Update сохраняет статус, филиал и подтвердившего администратора
func (r *Repository) Update(ctx context.Context, s *domain.Shift) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff_schedules").
		Set("status", s.Status).
		Set("branch_id", s.BranchID).
		Set("approved_by", s.ApprovedBy).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrShiftNotFound
	}

	return nil
}

// Reopen возвращает отклоненную заявку в PENDING как новую (сбрасывает филиал, администратора и created_at)
func (r *Repository) Reopen(ctx context.Context, id int64) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff_schedules").
		Set("status", domain.ShiftPending).
		Set("branch_id", nil).
		Set("approved_by", nil).
		Set("created_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.ShiftRejected}).
		Suffix("RETURNING " + strings.Join(shiftColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Reopen - build update query: %v", ErrBuildQuery, err)
	}

	s, err := scanShift(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Reopen - execute update: %w", ErrExecQuery, err)
	}

	return s, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShift(row rowScanner) (*domain.Shift, error) {
	var s domain.Shift
	var branchID, approvedBy sql.NullInt64
	var createdAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.StaffID,
		&s.WorkDate,
		&s.Bucket,
		&s.Status,
		&branchID,
		&approvedBy,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if branchID.Valid {
		s.BranchID = &branchID.Int64
	}
	if approvedBy.Valid {
		s.ApprovedBy = &approvedBy.Int64
	}
	s.WorkDate = domain.DateOnly(s.WorkDate)
	s.CreatedAt = createdAt.Time

	return &s, nil
}
