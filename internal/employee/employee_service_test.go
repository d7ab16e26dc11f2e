package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/document"
	documentMock "github.com/LiquidSebabas/InnOutPG/internal/document/mock"
	"github.com/LiquidSebabas/InnOutPG/internal/employee"
	employeeerrors "github.com/LiquidSebabas/InnOutPG/internal/employee/errors"
	employeeMock "github.com/LiquidSebabas/InnOutPG/internal/employee/mock"
	"github.com/LiquidSebabas/InnOutPG/internal/events"
	"github.com/LiquidSebabas/InnOutPG/internal/messaging/kafka"
	kafkaMock "github.com/LiquidSebabas/InnOutPG/internal/messaging/kafka/mock"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock    sqlmock.Sqlmock
	repo       *employeeMock.MockRepository
	docs       *documentMock.MockRepository
	docService *documentMock.MockService
	outbox     *kafkaMock.MockOutboxRepository
	redisMock  redismock.ClientMock
	service    employee.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	deps := &serviceDeps{
		sqlMock:    sqlMock,
		repo:       employeeMock.NewMockRepository(ctrl),
		docs:       documentMock.NewMockRepository(ctrl),
		docService: documentMock.NewMockService(ctrl),
		outbox:     kafkaMock.NewMockOutboxRepository(ctrl),
		redisMock:  redisMock,
	}
	clock := document.NewConsolidator(time.UTC).WithClock(func() time.Time {
		return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	})
	deps.service = employee.NewService(db, deps.repo, deps.docs, deps.docService, clock, deps.outbox, rdb)
	return deps
}

func (d *serviceDeps) expectTx(commit bool) {
	d.sqlMock.ExpectBegin()
	if commit {
		d.sqlMock.ExpectCommit()
	} else {
		d.sqlMock.ExpectRollback()
	}
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
}

func strPtr(s string) *string { return &s }

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing name", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{FullName: "  ", Email: "ana@example.com"})
		assert.ErrorIs(t, err, employeeerrors.ErrMissingRequiredFields)
	})

	t.Run("bad email", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{FullName: "Ana", Email: "not-an-email"})
		assert.Equal(t, apperror.CodeInvalidInput, apperror.CodeOf(err))
	})

	t.Run("phone outside the +502 plan", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName: "Ana",
			Email:    "ana@example.com",
			Phone:    strPtr("55512345"),
		})
		assert.Equal(t, apperror.CodeInvalidInput, apperror.CodeOf(err))
	})

	t.Run("bad document date", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName:  "Ana",
			Email:     "ana@example.com",
			Papeleria: &document.PapeleriaRequest{HealthExpiresAt: strPtr("11/03/2025")},
		})
		assert.Equal(t, apperror.CodeInvalidFormat, apperror.CodeOf(err))
	})

	t.Run("defaults documents and hire date", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.expectTx(true)
		deps.docs.EXPECT().WithTx(gomock.Any()).Return(deps.docs)

		var created *employee.Employee
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e *employee.Employee) error {
				created = e
				return nil
			})
		deps.docs.EXPECT().SaveSet(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, set *document.DocumentSet) error {
				assert.False(t, set.JudicialRecord)
				assert.False(t, set.PoliceRecord)
				assert.Empty(t, set.Expiries())
				return nil
			})
		deps.docs.EXPECT().LockSet(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		deps.docs.EXPECT().UpsertStatus(gomock.Any(), gomock.Any()).Return(true, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EmployeeCreated, ev.EventType)
				assert.Equal(t, events.EmployeeLifecycleTopic, ev.Topic)
				return nil
			})
		deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName: " Ana López ",
			Email:    "ana@example.com",
			Phone:    strPtr("+50255512345"),
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "Ana López", created.FullName)
		assert.Equal(t, "ana lópez", created.FullNameLower)
		assert.Equal(t, "2025-03-01", resp.HireDate)
		require.NotNil(t, resp.DocumentStatus)
		assert.Equal(t, document.StatusValid, resp.DocumentStatus.Status)
		require.NotNil(t, resp.Documents)
		assert.False(t, resp.Documents.JudicialRecord)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("consolidates documents on the same transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.expectTx(true)
		deps.docs.EXPECT().WithTx(gomock.Any()).Return(deps.docs)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		var saved *document.DocumentSet
		deps.docs.EXPECT().SaveSet(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, set *document.DocumentSet) error {
				saved = set
				return nil
			})
		deps.docs.EXPECT().LockSet(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, string) (*document.DocumentSet, error) {
				return saved, nil
			})
		deps.docs.EXPECT().UpsertStatus(gomock.Any(), gomock.Any()).Return(true, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		judicial := true
		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName: "Ana",
			Email:    "ana@example.com",
			Papeleria: &document.PapeleriaRequest{
				JudicialRecord:        &judicial,
				HealthExpiresAt:       strPtr("2025-06-30"),
				FoodHandlingExpiresAt: strPtr("2025-03-11"),
			},
		})
		require.NoError(t, err)
		assert.True(t, saved.JudicialRecord)
		assert.Equal(t, document.StatusExpiringSoon, resp.DocumentStatus.Status)
		assert.Equal(t, "2025-03-11", *resp.DocumentStatus.ConsolidatedExpiry)
		assert.Equal(t, "2025-01-10", *resp.DocumentStatus.AlertFrom)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate email rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.expectTx(false)
		deps.docs.EXPECT().WithTx(gomock.Any()).Return(deps.docs)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_email"})

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{FullName: "Ana", Email: "ana@example.com"})
		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.expectTx(false)
		deps.docs.EXPECT().WithTx(gomock.Any()).Return(deps.docs)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.docs.EXPECT().SaveSet(gomock.Any(), gomock.Any()).Return(nil)
		deps.docs.EXPECT().LockSet(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		deps.docs.EXPECT().UpsertStatus(gomock.Any(), gomock.Any()).Return(true, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sql.ErrConnDone)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{FullName: "Ana", Email: "ana@example.com"})
		assert.Equal(t, apperror.CodeStorageFailure, apperror.CodeOf(err))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Update(ctx, "42", employee.UpdateEmployeeRequest{FullName: "Ana", Email: "ana@example.com"})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()
		deps.expectTx(false)
		deps.docs.EXPECT().WithTx(gomock.Any()).Return(deps.docs)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id, employee.UpdateEmployeeRequest{FullName: "Ana", Email: "ana@example.com"})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("termination before hire", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.expectTx(false)
		deps.docs.EXPECT().WithTx(gomock.Any()).Return(deps.docs)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&employee.Employee{
			ID:       id,
			HireDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		}, nil)

		_, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			FullName:        "Ana",
			Email:           "ana@example.com",
			TerminationDate: strPtr("2024-04-30"),
		})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDateRange)
	})

	t.Run("keeps documents when papeleria is absent", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		expiry := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		alert := expiry.AddDate(0, 0, -60)

		deps.expectTx(true)
		deps.docs.EXPECT().WithTx(gomock.Any()).Return(deps.docs)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&employee.Employee{
			ID:       id,
			FullName: "Ana",
			HireDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "ana maría", e.FullNameLower)
				assert.Equal(t, "2024-05-01", e.HireDate.Format(time.DateOnly))
				return nil
			})
		stored := &document.DocumentSet{EmployeeID: id, LungsExpiresAt: &expiry}
		deps.docs.EXPECT().LockSet(gomock.Any(), id.String()).Return(stored, nil)
		deps.docs.EXPECT().UpsertStatus(gomock.Any(), gomock.Any()).Return(false, nil)
		deps.docs.EXPECT().FindStatus(gomock.Any(), id.String()).Return(&document.ConsolidatedStatus{
			EmployeeID:         id,
			ConsolidatedExpiry: &expiry,
			AlertFrom:          &alert,
			Status:             document.StatusExpired,
		}, nil)
		deps.docs.EXPECT().FindSet(gomock.Any(), id.String()).Return(stored, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EmployeeUpdated, ev.EventType)
				var payload events.EmployeeEvent
				require.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, string(document.StatusExpired), payload.DocumentStatus)
				return nil
			})
		deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			FullName: "Ana María",
			Email:    "ana@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "2025-02-01", *resp.Documents.LungsExpiresAt)
		assert.Equal(t, document.StatusExpired, resp.DocumentStatus.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate phone", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.expectTx(false)
		deps.docs.EXPECT().WithTx(gomock.Any()).Return(deps.docs)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&employee.Employee{ID: id}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_phone"})

		_, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			FullName: "Ana",
			Email:    "ana@example.com",
			Phone:    strPtr("+50255512345"),
		})
		assert.ErrorIs(t, err, employeeerrors.ErrPhoneAlreadyExists)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()
		deps.expectTx(false)
		deps.repo.EXPECT().SoftDelete(gomock.Any(), id).Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()
		deps.expectTx(true)
		deps.repo.EXPECT().SoftDelete(gomock.Any(), id).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EmployeeDeleted, ev.EventType)
				assert.Equal(t, id, ev.AggregateID)
				return nil
			})
		deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		require.NoError(t, deps.service.Delete(ctx, id))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	status := "expiring_soon"
	deps.repo.EXPECT().FindAll(gomock.Any(), employee.ListFilter{Search: "ana", Limit: 10, Offset: 20}).
		Return([]employee.EmployeeSummary{{
			Employee:       employee.Employee{ID: uuid.New(), FullName: "Ana"},
			DocumentStatus: &status,
		}}, int64(21), nil)

	items, total, err := deps.service.GetAll(context.Background(), employee.ListQuery{Search: "ana", Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, items, 1)
	assert.Equal(t, &status, items[0].DocumentStatus)
}

func TestEmployeeService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	id := uuid.New()
	deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&employee.Employee{ID: id, FullName: "Ana"}, nil)
	deps.docService.EXPECT().GetByEmployee(gomock.Any(), id.String()).Return(document.DocumentsResponse{
		EmployeeID: id.String(),
		Documents:  document.DocumentSetResponse{PoliceRecord: true},
		Status:     document.StatusResponse{EmployeeID: id.String(), Status: document.StatusValid},
	}, nil)

	resp, err := deps.service.GetByID(context.Background(), id.String())
	require.NoError(t, err)
	assert.True(t, resp.Documents.PoliceRecord)
	assert.Equal(t, document.StatusValid, resp.DocumentStatus.Status)
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()
	opts := []employee.EmployeeOption{{ID: uuid.New(), FullName: "Ana", Email: "ana@example.com"}}
	want := []employee.EmployeeOptionResponse{{ID: opts[0].ID.String(), FullName: "Ana", Email: "ana@example.com"}}
	data, err := json.Marshal(want)
	require.NoError(t, err)

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redisMock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(data))

		got, err := deps.service.GetOptions(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redisMock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.repo.EXPECT().FindOptions(gomock.Any()).Return(opts, nil)
		deps.redisMock.ExpectSet(employee.EmployeeOptionsKey, data, time.Hour).SetVal("OK")

		got, err := deps.service.GetOptions(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_EmailExists(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid email", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.EmailExists(ctx, "nope", nil)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmail)
	})

	t.Run("invalid exclude id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.EmailExists(ctx, "ana@example.com", strPtr("x"))
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("excludes the employee being edited", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()
		deps.repo.EXPECT().EmailExists(gomock.Any(), "ana@example.com", &id).Return(false, nil)

		exists, err := deps.service.EmailExists(ctx, " ana@example.com ", strPtr(id))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
