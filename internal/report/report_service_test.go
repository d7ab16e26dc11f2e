package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/document"
	"github.com/LiquidSebabas/InnOutPG/internal/report"
	reporterrors "github.com/LiquidSebabas/InnOutPG/internal/report/errors"
	reportMock "github.com/LiquidSebabas/InnOutPG/internal/report/mock"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) (*reportMock.MockRepository, report.Service) {
	repo := reportMock.NewMockRepository(gomock.NewController(t))
	clock := document.NewConsolidator(time.UTC).WithClock(func() time.Time {
		return time.Date(2025, 3, 20, 15, 0, 0, 0, time.UTC)
	})
	return repo, report.NewService(repo, clock)
}

func date(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func TestReportService_Dashboard(t *testing.T) {
	repo, svc := setupServiceTest(t)
	repo.EXPECT().Dashboard(gomock.Any(), date("2025-03-20"), date("2025-04-19")).
		Return(report.DashboardCounts{ActiveEmployees: 12, ActiveCompanies: 2, ShiftsToday: 5, ExpiringSoon: 3, Expired: 1}, nil)

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.ActiveEmployees)
	assert.Equal(t, int64(3), resp.DocumentsExpiring30)
	assert.Equal(t, int64(1), resp.DocumentsExpired)
	assert.NotEmpty(t, resp.GeneratedAt)
}

func TestReportService_Biweekly(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the current fortnight", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		emp := uuid.New()
		repo.EXPECT().WorkRows(gomock.Any(), report.WorkFilter{From: date("2025-03-16"), To: date("2025-03-31")}).
			Return([]report.WorkRow{
				{EmployeeID: emp, EmployeeName: "Ana", Status: "completed", StartTime: "22:00:00", EndTime: "06:00:00"},
				{EmployeeID: emp, EmployeeName: "Ana", Status: "absent", StartTime: "08:00:00", EndTime: "16:00:00"},
			}, nil)

		resp, err := svc.Biweekly(ctx, report.BiweeklyQuery{})
		require.NoError(t, err)
		assert.Equal(t, "2025-03-16", resp.Period.StartDate)
		assert.Equal(t, "2025-03-31", resp.Period.EndDate)
		assert.Equal(t, 1, resp.EmployeeCount)
		assert.Equal(t, 8.0, resp.Totals.HoursWorked)
		assert.Equal(t, 1, resp.Totals.Absent)
	})

	t.Run("filters by company and area", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		company, area := uuid.NewString(), uuid.NewString()
		repo.EXPECT().WorkRows(gomock.Any(), report.WorkFilter{
			From:      date("2025-03-01"),
			To:        date("2025-03-15"),
			CompanyID: &company,
			AreaID:    &area,
		}).Return(nil, nil)

		resp, err := svc.Biweekly(ctx, report.BiweeklyQuery{
			RangeQuery: report.RangeQuery{StartDate: "2025-03-01", EndDate: "2025-03-15"},
			CompanyID:  company,
			AreaID:     area,
		})
		require.NoError(t, err)
		assert.NotNil(t, resp.Employees)
		assert.Empty(t, resp.Employees)
		assert.Equal(t, &company, resp.Filters.CompanyID)
	})

	t.Run("invalid company id", func(t *testing.T) {
		_, svc := setupServiceTest(t)
		_, err := svc.Biweekly(ctx, report.BiweeklyQuery{CompanyID: "acme"})
		assert.ErrorIs(t, err, reporterrors.ErrInvalidCompanyID)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().WorkRows(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := svc.Biweekly(ctx, report.BiweeklyQuery{})
		assert.Equal(t, apperror.CodeStorageFailure, apperror.CodeOf(err))
	})
}

func TestReportService_BiweeklyPDF(t *testing.T) {
	repo, svc := setupServiceTest(t)
	repo.EXPECT().WorkRows(gomock.Any(), gomock.Any()).Return([]report.WorkRow{
		{EmployeeID: uuid.New(), EmployeeName: "Ana", Status: "completed", StartTime: "08:00", EndTime: "16:00"},
	}, nil)

	pdf, filename, err := svc.BiweeklyPDF(context.Background(), report.BiweeklyQuery{})
	require.NoError(t, err)
	assert.Equal(t, "biweekly-2025-03-16-2025-03-31.pdf", filename)
	assert.Contains(t, string(pdf), "%PDF-1.4")
	assert.Contains(t, string(pdf), "TOTAL")
}

func TestReportService_EmployeeStats(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		_, svc := setupServiceTest(t)
		_, err := svc.EmployeeStats(ctx, "7", report.RangeQuery{})
		assert.ErrorIs(t, err, reporterrors.ErrInvalidEmployeeID)
	})

	t.Run("unknown employee", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		id := uuid.NewString()
		repo.EXPECT().EmployeeName(gomock.Any(), id).Return("", gorm.ErrRecordNotFound)

		_, err := svc.EmployeeStats(ctx, id, report.RangeQuery{})
		assert.ErrorIs(t, err, reporterrors.ErrEmployeeNotFound)
	})

	t.Run("counts by status", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		id := uuid.New()
		idStr := id.String()
		repo.EXPECT().EmployeeName(gomock.Any(), idStr).Return("Ana", nil)
		repo.EXPECT().WorkRows(gomock.Any(), report.WorkFilter{From: date("2025-03-16"), To: date("2025-03-31"), EmployeeID: &idStr}).
			Return([]report.WorkRow{
				{EmployeeID: id, Status: "completed", StartTime: "08:00", EndTime: "16:00"},
				{EmployeeID: id, Status: "cancelled", StartTime: "08:00", EndTime: "16:00"},
			}, nil)

		resp, err := svc.EmployeeStats(ctx, idStr, report.RangeQuery{})
		require.NoError(t, err)
		assert.Equal(t, "Ana", resp.FullName)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, 1, resp.Cancelled)
		assert.Equal(t, 8.0, resp.HoursWorked)
	})
}

func TestReportService_CompanySummary(t *testing.T) {
	repo, svc := setupServiceTest(t)
	company := uuid.New()
	repo.EXPECT().ActiveCompanies(gomock.Any()).Return([]report.CompanyRef{{ID: company, Name: "Alfa"}}, nil)
	repo.EXPECT().WorkRows(gomock.Any(), gomock.Any()).Return([]report.WorkRow{
		{CompanyID: company, Status: "completed", StartTime: "06:00", EndTime: "14:00"},
	}, nil)

	resp, err := svc.CompanySummary(context.Background(), report.RangeQuery{StartDate: "2025-03-01", EndDate: "2025-03-31"})
	require.NoError(t, err)
	require.Len(t, resp.Companies, 1)
	assert.Equal(t, 1, resp.Companies[0].Completed)
	assert.Equal(t, 8.0, resp.Companies[0].AverageShiftHours)
}

func TestReportService_Productivity(t *testing.T) {
	ctx := context.Background()

	t.Run("empty range has no rate", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().WorkRows(gomock.Any(), gomock.Any()).Return(nil, nil)

		resp, err := svc.Productivity(ctx, report.RangeQuery{})
		require.NoError(t, err)
		assert.Nil(t, resp.CompletionRate)
	})

	t.Run("reversed range", func(t *testing.T) {
		_, svc := setupServiceTest(t)
		_, err := svc.Productivity(ctx, report.RangeQuery{StartDate: "2025-03-31", EndDate: "2025-03-01"})
		assert.ErrorIs(t, err, reporterrors.ErrInvalidDateRange)
	})

	t.Run("completion percentage", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().WorkRows(gomock.Any(), gomock.Any()).Return([]report.WorkRow{
			{Status: "completed", StartTime: "08:00", EndTime: "12:00"},
			{Status: "completed", StartTime: "08:00", EndTime: "12:00"},
			{Status: "completed", StartTime: "08:00", EndTime: "12:00"},
			{Status: "absent", StartTime: "08:00", EndTime: "12:00"},
		}, nil)

		resp, err := svc.Productivity(ctx, report.RangeQuery{})
		require.NoError(t, err)
		require.NotNil(t, resp.CompletionRate)
		assert.Equal(t, 75.0, *resp.CompletionRate)
		assert.Equal(t, 12.0, resp.HoursWorked)
	})
}

func TestReportService_EmployeesByArea(t *testing.T) {
	ctx := context.Background()

	t.Run("counts shifts from the last thirty days", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		area := uuid.NewString()
		expiry := date("2025-04-02")
		last := date("2025-03-18")
		status := "expiring_soon"
		emp := uuid.New()
		repo.EXPECT().Roster(gomock.Any(), report.RosterFilter{RecentSince: date("2025-02-18"), AreaID: &area}).
			Return([]report.RosterRow{{
				EmployeeID:         emp,
				FullName:           "Ana Lopez",
				Email:              "ana@innout.gt",
				HireDate:           date("2024-01-08"),
				DocumentStatus:     &status,
				ConsolidatedExpiry: &expiry,
				RecentShifts:       3,
				LastShiftDate:      &last,
			}}, nil)

		resp, err := svc.EmployeesByArea(ctx, report.RosterQuery{AreaID: area})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalEmployees)
		assert.Nil(t, resp.Filters.CompanyID)
		assert.Equal(t, &area, resp.Filters.AreaID)
		require.Len(t, resp.Employees, 1)
		assert.Equal(t, emp.String(), resp.Employees[0].EmployeeID)
		assert.Equal(t, "2024-01-08", resp.Employees[0].HireDate)
		assert.Equal(t, "2025-04-02", *resp.Employees[0].ConsolidatedExpiry)
		assert.Equal(t, "2025-03-18", *resp.Employees[0].LastShiftDate)
		assert.Equal(t, int64(3), resp.Employees[0].RecentShifts)
	})

	t.Run("empty roster is an empty list", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().Roster(gomock.Any(), gomock.Any()).Return(nil, nil)

		resp, err := svc.EmployeesByArea(ctx, report.RosterQuery{})
		require.NoError(t, err)
		assert.NotNil(t, resp.Employees)
		assert.Zero(t, resp.TotalEmployees)
	})

	t.Run("invalid company id", func(t *testing.T) {
		_, svc := setupServiceTest(t)
		_, err := svc.EmployeesByArea(ctx, report.RosterQuery{CompanyID: "nope"})
		assert.ErrorIs(t, err, reporterrors.ErrInvalidCompanyID)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().Roster(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

		_, err := svc.EmployeesByArea(ctx, report.RosterQuery{})
		assert.Equal(t, apperror.CodeStorageFailure, apperror.CodeOf(err))
	})
}
