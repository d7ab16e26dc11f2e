package document_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/document"
	documenterrors "github.com/LiquidSebabas/InnOutPG/internal/document/errors"
	documentMock "github.com/LiquidSebabas/InnOutPG/internal/document/mock"
	"github.com/LiquidSebabas/InnOutPG/internal/events"
	"github.com/LiquidSebabas/InnOutPG/internal/messaging/kafka"
	kafkaMock "github.com/LiquidSebabas/InnOutPG/internal/messaging/kafka/mock"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	repo      *documentMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
	service   document.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	repo := documentMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	clock := document.NewConsolidator(time.UTC).WithClock(func() time.Time {
		return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	})

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      repo,
		outbox:    outbox,
		redismock: redisMock,
		service:   document.NewService(db, repo, outbox, rdb, clock),
	}
}

func TestDocumentService_RecomputeStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.RecomputeStatus(ctx, "nope")
		assert.ErrorIs(t, err, documenterrors.ErrInvalidEmployeeID)
	})

	t.Run("unknown employee rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(gomock.Any(), id).Return(false, nil)

		_, err := deps.service.RecomputeStatus(ctx, id)
		assert.ErrorIs(t, err, documenterrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success commits", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(gomock.Any(), id.String()).Return(true, nil)
		deps.repo.EXPECT().LockSet(gomock.Any(), id.String()).Return(&document.DocumentSet{
			EmployeeID:      id,
			HealthExpiresAt: date("2025-03-11"),
		}, nil)
		deps.repo.EXPECT().UpsertStatus(gomock.Any(), gomock.Any()).Return(true, nil)

		resp, err := deps.service.RecomputeStatus(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, document.StatusExpiringSoon, resp.Status)
		require.NotNil(t, resp.DaysUntil)
		assert.Equal(t, 10, *resp.DaysUntil)
		assert.Equal(t, "2025-01-10", *resp.AlertFrom)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDocumentService_RecomputeAll(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	ok, broken := uuid.New(), uuid.New()

	deps.repo.EXPECT().ListEmployeeIDs(gomock.Any()).Return([]string{ok.String(), broken.String()}, nil)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).Times(2)

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	deps.repo.EXPECT().EmployeeExists(gomock.Any(), ok.String()).Return(true, nil)
	deps.repo.EXPECT().LockSet(gomock.Any(), ok.String()).Return(&document.DocumentSet{EmployeeID: ok}, nil)
	deps.repo.EXPECT().UpsertStatus(gomock.Any(), gomock.Any()).Return(true, nil)

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()
	deps.repo.EXPECT().EmployeeExists(gomock.Any(), broken.String()).Return(false, errors.New("connection reset"))

	result, err := deps.service.RecomputeAll(ctx)
	require.Error(t, err)
	assert.Equal(t, document.RecomputeResult{Processed: 2, Changed: 1, Failed: 1}, result)
}

func TestDocumentService_ListExpiring(t *testing.T) {
	ctx := context.Background()

	for _, days := range []int{0, -3, 366} {
		deps := setupServiceTest(t)
		_, err := deps.service.ListExpiring(ctx, days)
		assert.ErrorIs(t, err, documenterrors.ErrInvalidDays, "days=%d", days)
	}

	t.Run("window ends today plus days", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.repo.EXPECT().ListExpiring(gomock.Any(), *date("2025-03-31")).Return([]document.ExpiringRow{{
			EmployeeID:         id,
			FullName:           "Ana López",
			Email:              "ana@example.com",
			ConsolidatedExpiry: *date("2025-03-11"),
			AlertFrom:          *date("2025-01-10"),
			Status:             document.StatusExpiringSoon,
		}}, nil)

		rows, err := deps.service.ListExpiring(ctx, 30)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 10, rows[0].DaysUntil)
		assert.Equal(t, "Ana López", rows[0].FullName)
	})

	t.Run("storage failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ListExpiring(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
		_, err := deps.service.ListExpiring(ctx, 30)
		assert.Equal(t, apperror.CodeStorageFailure, apperror.CodeOf(err))
	})
}

func TestDocumentService_GetByEmployee_NoRows(t *testing.T) {
	deps := setupServiceTest(t)
	id := uuid.NewString()

	deps.repo.EXPECT().EmployeeExists(gomock.Any(), id).Return(true, nil)
	deps.repo.EXPECT().FindSet(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)
	deps.repo.EXPECT().FindStatus(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := deps.service.GetByEmployee(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, document.StatusValid, resp.Status.Status)
	assert.False(t, resp.Documents.JudicialRecord)
	assert.Nil(t, resp.Status.DaysUntil)
}

func TestDocumentService_QueueExpiryAlerts(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	row := document.ExpiringRow{
		EmployeeID:         id,
		FullName:           "Ana López",
		Email:              "ana@example.com",
		ConsolidatedExpiry: *date("2025-03-11"),
		AlertFrom:          *date("2025-01-10"),
		Status:             document.StatusExpiringSoon,
	}
	key := "document-alert:" + id.String() + ":2025-03-11"

	t.Run("queues once per expiry", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ListAlertDue(gomock.Any(), *date("2025-03-01")).Return([]document.ExpiringRow{row, row}, nil)
		deps.redismock.ExpectSetNX(key, "1", 90*24*time.Hour).SetVal(true)
		deps.redismock.ExpectSetNX(key, "1", 90*24*time.Hour).SetVal(false)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.DocumentAlertsTopic, e.Topic)
			assert.Equal(t, events.DocumentExpiryAlert, e.EventType)
			assert.Equal(t, id.String(), e.AggregateID)
			return nil
		})

		n, err := deps.service.QueueExpiryAlerts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("outbox failure releases the dedupe key", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ListAlertDue(gomock.Any(), gomock.Any()).Return([]document.ExpiringRow{row}, nil)
		deps.redismock.ExpectSetNX(key, "1", 90*24*time.Hour).SetVal(true)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
		deps.redismock.ExpectDel(key).SetVal(1)

		n, err := deps.service.QueueExpiryAlerts(ctx)
		assert.Error(t, err)
		assert.Zero(t, n)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}
