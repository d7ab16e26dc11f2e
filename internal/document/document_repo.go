package document

import (
	"context"
	"database/sql"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upsertStatusSQL = `
INSERT INTO document_statuses (employee_id, consolidated_expiry, alert_from, status, calculated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (employee_id) DO UPDATE SET
	consolidated_expiry = EXCLUDED.consolidated_expiry,
	alert_from = EXCLUDED.alert_from,
	status = EXCLUDED.status,
	calculated_at = EXCLUDED.calculated_at
WHERE (document_statuses.consolidated_expiry, document_statuses.alert_from, document_statuses.status)
	IS DISTINCT FROM (EXCLUDED.consolidated_expiry, EXCLUDED.alert_from, EXCLUDED.status)`

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	FindSet(ctx context.Context, employeeID string) (*DocumentSet, error)
	LockSet(ctx context.Context, employeeID string) (*DocumentSet, error)
	SaveSet(ctx context.Context, set *DocumentSet) error
	FindStatus(ctx context.Context, employeeID string) (*ConsolidatedStatus, error)
	UpsertStatus(ctx context.Context, status ConsolidatedStatus) (bool, error)
	ListEmployeeIDs(ctx context.Context) ([]string, error)
	ListExpiring(ctx context.Context, until time.Time) ([]ExpiringRow, error)
	ListAlertDue(ctx context.Context, today time.Time) ([]ExpiringRow, error)
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

func (r *repository) FindSet(ctx context.Context, employeeID string) (*DocumentSet, error) {
	var set DocumentSet
	err := r.db.WithContext(ctx).First(&set, "employee_id = ?", employeeID).Error
	return &set, err
}

// LockSet reads the set with FOR UPDATE; it must run inside a transaction.
func (r *repository) LockSet(ctx context.Context, employeeID string) (*DocumentSet, error) {
	var set DocumentSet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&set, "employee_id = ?", employeeID).Error
	return &set, err
}

func (r *repository) SaveSet(ctx context.Context, set *DocumentSet) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"judicial_record", "police_record",
				"health_issued_at", "health_expires_at",
				"food_handling_issued_at", "food_handling_expires_at",
				"lungs_issued_at", "lungs_expires_at",
				"updated_at",
			}),
		}).
		Create(set).Error
}

func (r *repository) FindStatus(ctx context.Context, employeeID string) (*ConsolidatedStatus, error) {
	var status ConsolidatedStatus
	err := r.db.WithContext(ctx).First(&status, "employee_id = ?", employeeID).Error
	return &status, err
}

// UpsertStatus writes status and reports whether a row was inserted or its
// derived values changed. An unchanged row keeps its calculated_at.
func (r *repository) UpsertStatus(ctx context.Context, status ConsolidatedStatus) (bool, error) {
	res := r.db.WithContext(ctx).Exec(upsertStatusSQL,
		status.EmployeeID,
		status.ConsolidatedExpiry,
		status.AlertFrom,
		string(status.Status),
		status.CalculatedAt,
	)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) ListEmployeeIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("deleted_at IS NULL").
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) expiringQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("document_statuses ds").
		Select(`ds.employee_id, e.full_name, e.email, e.phone,
			ds.consolidated_expiry, ds.alert_from, ds.status`).
		Joins("JOIN employees e ON e.id = ds.employee_id").
		Where("e.deleted_at IS NULL").
		Where("ds.consolidated_expiry IS NOT NULL")
}

func (r *repository) ListExpiring(ctx context.Context, until time.Time) ([]ExpiringRow, error) {
	var rows []ExpiringRow
	err := r.expiringQuery(ctx).
		Where("ds.consolidated_expiry <= ?", until).
		Order("ds.consolidated_expiry ASC, e.full_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListAlertDue(ctx context.Context, today time.Time) ([]ExpiringRow, error) {
	var rows []ExpiringRow
	err := r.expiringQuery(ctx).
		Where("ds.alert_from <= ?", today).
		Order("ds.consolidated_expiry ASC").
		Scan(&rows).Error
	return rows, err
}
