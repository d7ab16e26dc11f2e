package report

import (
	"context"
	"strings"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/document"
	reporterrors "github.com/LiquidSebabas/InnOutPG/internal/report/errors"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/contextutil"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/dberror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Dashboard(ctx context.Context) (DashboardResponse, error)
	Biweekly(ctx context.Context, q BiweeklyQuery) (BiweeklyResponse, error)
	BiweeklyPDF(ctx context.Context, q BiweeklyQuery) ([]byte, string, error)
	EmployeeStats(ctx context.Context, employeeID string, q RangeQuery) (EmployeeStatsResponse, error)
	CompanySummary(ctx context.Context, q RangeQuery) (CompanySummaryResponse, error)
	Productivity(ctx context.Context, q RangeQuery) (ProductivityResponse, error)
	EmployeesByArea(ctx context.Context, q RosterQuery) (EmployeesByAreaResponse, error)
}

type service struct {
	repo   Repository
	clock  *document.Consolidator
	logger *zap.Logger
}

// NewService reads "today" from clock so reports agree with document
// statuses on the business date.
func NewService(repo Repository, clock *document.Consolidator, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if clock == nil {
		clock = document.NewConsolidator(time.UTC)
	}
	return &service{repo: repo, clock: clock, logger: l}
}

func generatedAt() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (s *service) Dashboard(ctx context.Context) (DashboardResponse, error) {
	today := s.clock.Today()
	counts, err := s.repo.Dashboard(ctx, today, today.AddDate(0, 0, document.ExpiringSoonDays))
	if err != nil {
		return DashboardResponse{}, dberror.Translate(err, nil)
	}

	return DashboardResponse{
		ActiveEmployees:     counts.ActiveEmployees,
		ActiveCompanies:     counts.ActiveCompanies,
		ShiftsToday:         counts.ShiftsToday,
		DocumentsExpiring30: counts.ExpiringSoon,
		DocumentsExpired:    counts.Expired,
		GeneratedAt:         generatedAt(),
	}, nil
}

func (s *service) Biweekly(ctx context.Context, q BiweeklyQuery) (BiweeklyResponse, error) {
	period, err := resolvePeriod(q.StartDate, q.EndDate, s.clock.Today())
	if err != nil {
		return BiweeklyResponse{}, err
	}

	filter := WorkFilter{From: period.Start, To: period.End}
	if filter.CompanyID, err = optionalID(q.CompanyID, reporterrors.ErrInvalidCompanyID); err != nil {
		return BiweeklyResponse{}, err
	}
	if filter.AreaID, err = optionalID(q.AreaID, reporterrors.ErrInvalidAreaID); err != nil {
		return BiweeklyResponse{}, err
	}

	rows, err := s.repo.WorkRows(ctx, filter)
	if err != nil {
		return BiweeklyResponse{}, dberror.Translate(err, nil)
	}

	employees, totals := summarizeByEmployee(rows)
	if employees == nil {
		employees = []EmployeeTotals{}
	}

	contextutil.GetLogger(ctx, s.logger).Debug("biweekly report built",
		zap.String("start", period.Start.Format(time.DateOnly)),
		zap.String("end", period.End.Format(time.DateOnly)),
		zap.Int("rows", len(rows)),
	)

	return BiweeklyResponse{
		Period:        mapPeriod(period),
		Filters:       BiweeklyFilters{CompanyID: filter.CompanyID, AreaID: filter.AreaID},
		Employees:     employees,
		Totals:        totals,
		EmployeeCount: len(employees),
		GeneratedAt:   generatedAt(),
	}, nil
}

func (s *service) BiweeklyPDF(ctx context.Context, q BiweeklyQuery) ([]byte, string, error) {
	report, err := s.Biweekly(ctx, q)
	if err != nil {
		return nil, "", err
	}

	filename := "biweekly-" + report.Period.StartDate + "-" + report.Period.EndDate + ".pdf"
	return buildReportPDF("InnOut biweekly report", biweeklyLines(report)), filename, nil
}

func (s *service) EmployeeStats(ctx context.Context, employeeID string, q RangeQuery) (EmployeeStatsResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeStatsResponse{}, reporterrors.ErrInvalidEmployeeID
	}
	period, err := resolvePeriod(q.StartDate, q.EndDate, s.clock.Today())
	if err != nil {
		return EmployeeStatsResponse{}, err
	}

	name, err := s.repo.EmployeeName(ctx, employeeID)
	if err != nil {
		return EmployeeStatsResponse{}, dberror.Translate(err, reporterrors.ErrEmployeeNotFound)
	}

	rows, err := s.repo.WorkRows(ctx, WorkFilter{From: period.Start, To: period.End, EmployeeID: &employeeID})
	if err != nil {
		return EmployeeStatsResponse{}, dberror.Translate(err, nil)
	}

	return EmployeeStatsResponse{
		EmployeeID: employeeID,
		FullName:   name,
		Period:     mapPeriod(period),
		Totals:     summarize(rows),
	}, nil
}

func (s *service) CompanySummary(ctx context.Context, q RangeQuery) (CompanySummaryResponse, error) {
	period, err := resolvePeriod(q.StartDate, q.EndDate, s.clock.Today())
	if err != nil {
		return CompanySummaryResponse{}, err
	}

	companies, err := s.repo.ActiveCompanies(ctx)
	if err != nil {
		return CompanySummaryResponse{}, dberror.Translate(err, nil)
	}
	rows, err := s.repo.WorkRows(ctx, WorkFilter{From: period.Start, To: period.End})
	if err != nil {
		return CompanySummaryResponse{}, dberror.Translate(err, nil)
	}

	return CompanySummaryResponse{
		Period:      mapPeriod(period),
		Companies:   summarizeByCompany(companies, rows),
		GeneratedAt: generatedAt(),
	}, nil
}

func (s *service) Productivity(ctx context.Context, q RangeQuery) (ProductivityResponse, error) {
	period, err := resolvePeriod(q.StartDate, q.EndDate, s.clock.Today())
	if err != nil {
		return ProductivityResponse{}, err
	}

	rows, err := s.repo.WorkRows(ctx, WorkFilter{From: period.Start, To: period.End})
	if err != nil {
		return ProductivityResponse{}, dberror.Translate(err, nil)
	}

	t := summarize(rows)
	return ProductivityResponse{
		Period:         mapPeriod(period),
		Total:          t.Total,
		Completed:      t.Completed,
		Cancelled:      t.Cancelled,
		Absent:         t.Absent,
		CompletionRate: t.CompletionRate(),
		HoursWorked:    t.HoursWorked,
	}, nil
}

// recentShiftDays is the window for RosterEmployee.RecentShifts.
const recentShiftDays = 30

func (s *service) EmployeesByArea(ctx context.Context, q RosterQuery) (EmployeesByAreaResponse, error) {
	filter := RosterFilter{RecentSince: s.clock.Today().AddDate(0, 0, -recentShiftDays)}

	var err error
	if filter.CompanyID, err = optionalID(q.CompanyID, reporterrors.ErrInvalidCompanyID); err != nil {
		return EmployeesByAreaResponse{}, err
	}
	if filter.AreaID, err = optionalID(q.AreaID, reporterrors.ErrInvalidAreaID); err != nil {
		return EmployeesByAreaResponse{}, err
	}

	rows, err := s.repo.Roster(ctx, filter)
	if err != nil {
		return EmployeesByAreaResponse{}, dberror.Translate(err, nil)
	}

	employees := mapRoster(rows)
	return EmployeesByAreaResponse{
		Filters:        BiweeklyFilters{CompanyID: filter.CompanyID, AreaID: filter.AreaID},
		Employees:      employees,
		TotalEmployees: len(employees),
		GeneratedAt:    generatedAt(),
	}, nil
}

func optionalID(v string, invalid error) (*string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	if _, err := uuid.Parse(v); err != nil {
		return nil, invalid
	}
	return &v, nil
}
