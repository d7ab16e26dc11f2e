package report

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const dashboardSQL = `
SELECT
	(SELECT COUNT(*) FROM employees
		WHERE deleted_at IS NULL AND (termination_date IS NULL OR termination_date >= @today)) AS active_employees,
	(SELECT COUNT(*) FROM companies WHERE is_active = TRUE) AS active_companies,
	(SELECT COUNT(*) FROM shifts WHERE shift_date = @today) AS shifts_today,
	(SELECT COUNT(*) FROM document_statuses ds
		JOIN employees e ON e.id = ds.employee_id AND e.deleted_at IS NULL
		WHERE ds.consolidated_expiry BETWEEN @today AND @until) AS expiring_soon,
	(SELECT COUNT(*) FROM document_statuses ds
		JOIN employees e ON e.id = ds.employee_id AND e.deleted_at IS NULL
		WHERE ds.consolidated_expiry < @today) AS expired`

// WorkFilter selects assignments by date, inclusive on both ends. Nil ids
// are not applied.
type WorkFilter struct {
	From       time.Time
	To         time.Time
	EmployeeID *string
	CompanyID  *string
	AreaID     *string
}

// RosterFilter narrows the roster to employees who have ever been assigned
// to a shift of the given company or area. RecentSince bounds the recent
// shift count.
type RosterFilter struct {
	RecentSince time.Time
	CompanyID   *string
	AreaID      *string
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	Dashboard(ctx context.Context, today, expiringUntil time.Time) (DashboardCounts, error)
	WorkRows(ctx context.Context, filter WorkFilter) ([]WorkRow, error)
	ActiveCompanies(ctx context.Context) ([]CompanyRef, error)
	EmployeeName(ctx context.Context, employeeID string) (string, error)
	Roster(ctx context.Context, filter RosterFilter) ([]RosterRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Dashboard(ctx context.Context, today, expiringUntil time.Time) (DashboardCounts, error) {
	var out DashboardCounts
	err := r.db.WithContext(ctx).
		Raw(dashboardSQL, map[string]any{"today": today, "until": expiringUntil}).
		Scan(&out).Error
	return out, err
}

func (r *repository) WorkRows(ctx context.Context, filter WorkFilter) ([]WorkRow, error) {
	q := r.db.WithContext(ctx).
		Table("assignments a").
		Select(`a.id AS assignment_id, a.employee_id, e.full_name AS employee_name,
			s.company_id, c.name AS company_name, s.area_id, ar.name AS area_name,
			a.assignment_date, a.status, s.start_time, s.end_time`).
		Joins("JOIN shifts s ON s.id = a.shift_id").
		Joins("JOIN employees e ON e.id = a.employee_id").
		Joins("JOIN companies c ON c.id = s.company_id").
		Joins("JOIN areas ar ON ar.id = s.area_id").
		Where("a.assignment_date BETWEEN ? AND ?", filter.From, filter.To)

	if filter.EmployeeID != nil {
		q = q.Where("a.employee_id = ?", *filter.EmployeeID)
	}
	if filter.CompanyID != nil {
		q = q.Where("s.company_id = ?", *filter.CompanyID)
	}
	if filter.AreaID != nil {
		q = q.Where("s.area_id = ?", *filter.AreaID)
	}

	var rows []WorkRow
	err := q.Order("e.full_name ASC, a.assignment_date ASC, s.start_time ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) ActiveCompanies(ctx context.Context) ([]CompanyRef, error) {
	var out []CompanyRef
	err := r.db.WithContext(ctx).
		Table("companies").
		Select("id, name").
		Where("is_active = TRUE").
		Order("name ASC").
		Scan(&out).Error
	return out, err
}

// EmployeeName returns gorm.ErrRecordNotFound for unknown or deleted
// employees.
func (r *repository) EmployeeName(ctx context.Context, employeeID string) (string, error) {
	var name string
	res := r.db.WithContext(ctx).
		Table("employees").
		Select("full_name").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Scan(&name)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", gorm.ErrRecordNotFound
	}
	return name, nil
}

func (r *repository) Roster(ctx context.Context, filter RosterFilter) ([]RosterRow, error) {
	q := r.db.WithContext(ctx).
		Table("employees e").
		Select(`e.id AS employee_id, e.full_name, e.phone, e.email, e.hire_date, e.created_at,
			ds.status AS document_status, ds.consolidated_expiry,
			COUNT(a.id) FILTER (WHERE a.assignment_date >= ?) AS recent_shifts,
			MAX(a.assignment_date) AS last_shift_date`, filter.RecentSince).
		Joins("LEFT JOIN document_statuses ds ON ds.employee_id = e.id").
		Joins("LEFT JOIN assignments a ON a.employee_id = e.id").
		Where("e.deleted_at IS NULL")

	if filter.CompanyID != nil {
		q = q.Where(`EXISTS (SELECT 1 FROM assignments ca JOIN shifts cs ON cs.id = ca.shift_id
			WHERE ca.employee_id = e.id AND cs.company_id = ?)`, *filter.CompanyID)
	}
	if filter.AreaID != nil {
		q = q.Where(`EXISTS (SELECT 1 FROM assignments aa JOIN shifts sa ON sa.id = aa.shift_id
			WHERE aa.employee_id = e.id AND sa.area_id = ?)`, *filter.AreaID)
	}

	var rows []RosterRow
	err := q.Group("e.id, ds.status, ds.consolidated_expiry").
		Order("e.full_name ASC").
		Scan(&rows).Error
	return rows, err
}
