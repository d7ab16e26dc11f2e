package assignment

import (
	"context"
	"database/sql"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/dbtx"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilter selects assignments by shift date and ownership. Nil fields are
// not applied.
type ListFilter struct {
	From       *time.Time
	To         *time.Time
	EmployeeID *string
	CompanyID  *string
	AreaID     *string
	Status     *Status
	Limit      int
	Offset     int
}

//go:generate mockgen -source=assignment_repo.go -destination=mock/assignment_repo_mock.go -package=mock
type Repository interface {
	IntervalSource

	WithTx(tx *sql.Tx) Repository
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	LockEmployeeDay(ctx context.Context, employeeID string, date time.Time) error
	Create(ctx context.Context, a *Assignment) error
	FindForUpdate(ctx context.Context, id string) (*Assignment, error)
	UpdateStatus(ctx context.Context, a *Assignment) error
	FindDetail(ctx context.Context, id string) (*AssignmentDetail, error)
	List(ctx context.Context, filter ListFilter) ([]AssignmentDetail, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Count(&count).Error
	return count > 0, err
}

// LockEmployeeDay serializes writers for one employee and date until the
// surrounding transaction ends.
func (r *repository) LockEmployeeDay(ctx context.Context, employeeID string, date time.Time) error {
	key := "assignment:" + employeeID + ":" + date.Format(time.DateOnly)
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key).Error
}

func (r *repository) ActiveOnDate(ctx context.Context, employeeID string, date time.Time, excludeID *string) ([]ScheduledInterval, error) {
	q := r.db.WithContext(ctx).
		Table("assignments a").
		Select("a.id AS assignment_id, a.shift_id, s.start_time, s.end_time, a.status").
		Joins("JOIN shifts s ON s.id = a.shift_id").
		Where("a.employee_id = ?", employeeID).
		Where("a.assignment_date = ?", date).
		Where("a.status <> ?", StatusCancelled)

	if excludeID != nil && *excludeID != "" {
		q = q.Where("a.id <> ?", *excludeID)
	}

	var rows []ScheduledInterval
	err := q.Order("s.start_time ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, a *Assignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindForUpdate(ctx context.Context, id string) (*Assignment, error) {
	var a Assignment
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) UpdateStatus(ctx context.Context, a *Assignment) error {
	res := r.db.WithContext(ctx).
		Model(&Assignment{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"status":     a.Status,
			"reason":     a.Reason,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

const detailColumns = `assignments.*,
	s.shift_date, s.start_time, s.end_time, s.position, s.notes,
	e.full_name AS employee_name, e.email AS employee_email,
	c.id AS company_id, c.name AS company_name,
	ar.id AS area_id, ar.name AS area_name`

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("assignments").
		Joins("JOIN shifts s ON s.id = assignments.shift_id").
		Joins("JOIN employees e ON e.id = assignments.employee_id").
		Joins("JOIN companies c ON c.id = s.company_id").
		Joins("JOIN areas ar ON ar.id = s.area_id")
}

func (r *repository) FindDetail(ctx context.Context, id string) (*AssignmentDetail, error) {
	var detail AssignmentDetail
	res := r.joined(ctx).
		Select(detailColumns).
		Where("assignments.id = ?", id).
		Limit(1).
		Scan(&detail)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &detail, nil
}

// List returns one page of matches and the total count. A zero Limit
// returns every match.
func (r *repository) List(ctx context.Context, filter ListFilter) ([]AssignmentDetail, int64, error) {
	q := r.joined(ctx)
	if filter.From != nil {
		q = q.Where("assignments.assignment_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("assignments.assignment_date <= ?", *filter.To)
	}
	if filter.EmployeeID != nil {
		q = q.Where("assignments.employee_id = ?", *filter.EmployeeID)
	}
	if filter.CompanyID != nil {
		q = q.Where("s.company_id = ?", *filter.CompanyID)
	}
	if filter.AreaID != nil {
		q = q.Where("s.area_id = ?", *filter.AreaID)
	}
	if filter.Status != nil {
		q = q.Where("assignments.status = ?", *filter.Status)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Select(detailColumns).Order("assignments.assignment_date ASC, s.start_time ASC, e.full_name ASC")
	if filter.Limit > 0 {
		q = q.Scopes(scope.Paginate(filter.Limit, filter.Offset))
	}

	var rows []AssignmentDetail
	err := q.Scan(&rows).Error
	return rows, total, err
}
