package assignment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/timeinterval"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

var intervalColumns = []string{"assignment_id", "shift_id", "start_time", "end_time", "status"}

func TestRepository_ActiveOnDate(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	existing := uuid.New()
	shiftID := uuid.New()

	t.Run("skips cancelled assignments", func(t *testing.T) {
		db, mock := newGormMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(
			`FROM assignments a JOIN shifts s ON s.id = a.shift_id WHERE a.employee_id = $1 AND a.assignment_date = $2 AND a.status <> $3 ORDER BY s.start_time ASC`)).
			WithArgs(employeeID, date, string(StatusCancelled)).
			WillReturnRows(sqlmock.NewRows(intervalColumns))

		rows, err := NewRepository(db).ActiveOnDate(ctx, employeeID, date, nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("excludes the assignment being edited", func(t *testing.T) {
		db, mock := newGormMock(t)
		exclude := uuid.NewString()
		mock.ExpectQuery(regexp.QuoteMeta(
			`WHERE a.employee_id = $1 AND a.assignment_date = $2 AND a.status <> $3 AND a.id <> $4 ORDER BY s.start_time ASC`)).
			WithArgs(employeeID, date, string(StatusCancelled), exclude).
			WillReturnRows(sqlmock.NewRows(intervalColumns).
				AddRow(existing.String(), shiftID.String(), "08:00:00", "16:00:00", "assigned"))

		rows, err := NewRepository(db).ActiveOnDate(ctx, employeeID, date, &exclude)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, existing, rows[0].AssignmentID)
		assert.Equal(t, shiftID, rows[0].ShiftID)
		assert.Equal(t, StatusAssigned, rows[0].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty exclude id is ignored", func(t *testing.T) {
		db, mock := newGormMock(t)
		empty := ""
		mock.ExpectQuery(regexp.QuoteMeta(`AND a.status <> $3 ORDER BY`)).
			WithArgs(employeeID, date, string(StatusCancelled)).
			WillReturnRows(sqlmock.NewRows(intervalColumns))

		_, err := NewRepository(db).ActiveOnDate(ctx, employeeID, date, &empty)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ActiveOnDateFeedsConflictChecker(t *testing.T) {
	db, mock := newGormMock(t)
	employeeID := uuid.NewString()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	// Only a cancelled 08:00-16:00 exists that day; the status filter keeps
	// it out, so the same interval is free again.
	mock.ExpectQuery(regexp.QuoteMeta(`a.status <> $3`)).
		WithArgs(employeeID, date, string(StatusCancelled)).
		WillReturnRows(sqlmock.NewRows(intervalColumns))

	conflict, err := NewConflictChecker(NewRepository(db)).HasConflict(context.Background(), employeeID, date, timeinterval.MustParse("08:00", "16:00"), nil)
	require.NoError(t, err)
	assert.False(t, conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
