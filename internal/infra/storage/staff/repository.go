package staff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

// Repository справочник сотрудников
// Единственное место, где пользователи фильтруются по роли
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр справочника сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// OnShift возвращает ID мастеров (role = STAFF) с подтвержденной сменой bucket в филиале на дату
// Порядок - по возрастанию ID
func (r *Repository) OnShift(ctx context.Context, branchID int64, date time.Time, bucket domain.ShiftBucket) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT u.id").
		From("staff_schedules ss").
		Join("users u ON u.id = ss.staff_id").
		Where(squirrel.Eq{
			"ss.branch_id": branchID,
			"ss.work_date": domain.DateOnly(date),
			"ss.shift":     bucket,
			"ss.status":    domain.ShiftApproved,
			"u.role":       domain.RoleStaff,
		}).
		OrderBy("u.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: OnShift - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: OnShift - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	staffIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: OnShift - scan staff id: %v", ErrScanRow, err)
		}
		staffIDs = append(staffIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: OnShift - rows error: %v", ErrScanRow, err)
	}

	return staffIDs, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "username", "full_name", "role").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var user domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Username, &user.FullName, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan user: %w", ErrScanRow, err)
	}

	return &user, nil
}
