package catalog

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetService(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, slug, price, duration_minutes, is_active, category FROM services WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "price", "duration_minutes", "is_active", "category"}).
			AddRow(int64(2), "Gel manicure", "gel-manicure", "150000.00", nil, true, "nails"))

	service, err := repo.GetService(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, "gel-manicure", service.Slug)
	assert.True(t, decimal.NewFromInt(150000).Equal(service.Price))
	assert.Nil(t, service.DurationMinutes)
	assert.Equal(t, 60, service.Duration())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetService_WithDuration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM services")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "price", "duration_minutes", "is_active", "category"}).
			AddRow(int64(3), "Pedicure", "pedicure", "200000.00", int64(45), true, "nails"))

	service, err := repo.GetService(context.Background(), 3)

	require.NoError(t, err)
	require.NotNil(t, service.DurationMinutes)
	assert.Equal(t, 45, service.Duration())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetService_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM services")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetService(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestRepository_GetBranch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, address, phone FROM branches WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "phone"}).
			AddRow(int64(1), "District 1", "12 Le Loi", "+84 28 0000 0000"))

	branch, err := repo.GetBranch(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "District 1", branch.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
