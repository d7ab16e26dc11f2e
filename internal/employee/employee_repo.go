package employee

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/dbtx"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/scope"

	"gorm.io/gorm"
)

// ListFilter narrows FindAll. Search matches a substring of the lowercase
// full name. Limit 0 returns every row.
type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

// EmployeeSummary is an employee row with its consolidated document state.
type EmployeeSummary struct {
	Employee
	DocumentStatus     *string
	ConsolidatedExpiry *time.Time
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindAll(ctx context.Context, filter ListFilter) ([]EmployeeSummary, int64, error)
	FindOptions(ctx context.Context) ([]EmployeeOption, error)
	SoftDelete(ctx context.Context, id string) error
	EmailExists(ctx context.Context, email string, excludeID *string) (bool, error)
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"full_name":        e.FullName,
			"full_name_lower":  e.FullNameLower,
			"email":            e.Email,
			"phone":            e.Phone,
			"birth_date":       e.BirthDate,
			"hire_date":        e.HireDate,
			"termination_date": e.TerminationDate,
			"updated_at":       time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]EmployeeSummary, int64, error) {
	base := r.db.WithContext(ctx).
		Table("employees").
		Joins("LEFT JOIN document_statuses ds ON ds.employee_id = employees.id").
		Scopes(scope.NotDeleted("employees"))

	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		base = base.Where("employees.full_name_lower ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := base.
		Select("employees.*, ds.status AS document_status, ds.consolidated_expiry").
		Order("employees.full_name ASC")
	if filter.Limit > 0 {
		q = q.Scopes(scope.Paginate(filter.Limit, filter.Offset))
	}

	var rows []EmployeeSummary
	err := q.Scan(&rows).Error
	return rows, total, err
}

func (r *repository) FindOptions(ctx context.Context) ([]EmployeeOption, error) {
	var opts []EmployeeOption
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("id, full_name, email").
		Where("termination_date IS NULL OR termination_date >= CURRENT_DATE").
		Order("full_name ASC").
		Scan(&opts).Error
	return opts, err
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) EmailExists(ctx context.Context, email string, excludeID *string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != nil && *excludeID != "" {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}
