package shift

import (
	"context"
	"database/sql"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/dbtx"

	"gorm.io/gorm"
)

const assignedCountSQL = `(SELECT COUNT(*) FROM assignments a
	WHERE a.shift_id = shifts.id AND a.status <> 'cancelled') AS assigned_count`

// AvailableFilter narrows the shifts listed for one date.
type AvailableFilter struct {
	Date      time.Time
	CompanyID *string
	AreaID    *string
}

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Shift) error
	FindByID(ctx context.Context, id string) (*ShiftDetail, error)
	FindAvailable(ctx context.Context, filter AvailableFilter) ([]ShiftDetail, error)
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

func (r *repository) Create(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Shift{}).
		Select("shifts.*, c.name AS company_name, ar.name AS area_name, " + assignedCountSQL).
		Joins("JOIN companies c ON c.id = shifts.company_id").
		Joins("JOIN areas ar ON ar.id = shifts.area_id")
}

func (r *repository) FindByID(ctx context.Context, id string) (*ShiftDetail, error) {
	var detail ShiftDetail
	res := r.detailQuery(ctx).
		Where("shifts.id = ?", id).
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

// FindAvailable lists shifts of active companies and areas on the date.
func (r *repository) FindAvailable(ctx context.Context, filter AvailableFilter) ([]ShiftDetail, error) {
	q := r.detailQuery(ctx).
		Where("shifts.shift_date = ?", filter.Date).
		Where("c.is_active = TRUE AND ar.is_active = TRUE")

	if filter.CompanyID != nil {
		q = q.Where("shifts.company_id = ?", *filter.CompanyID)
	}
	if filter.AreaID != nil {
		q = q.Where("shifts.area_id = ?", *filter.AreaID)
	}

	var shifts []ShiftDetail
	err := q.Order("shifts.start_time ASC, c.name ASC").Scan(&shifts).Error
	return shifts, err
}
