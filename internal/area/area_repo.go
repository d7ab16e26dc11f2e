package area

import (
	"context"
	"database/sql"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/dbtx"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=area_repo.go -destination=mock/area_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, area *Area) error
	FindActiveByCompany(ctx context.Context, companyID string) ([]Area, error)
	FindActiveByID(ctx context.Context, id string) (*Area, error)
	FindActiveInCompany(ctx context.Context, companyID, id string) (*Area, error)
	Update(ctx context.Context, area *Area) error
	Deactivate(ctx context.Context, id string) (*Area, error)
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

func (r *repository) Create(ctx context.Context, area *Area) error {
	return r.db.WithContext(ctx).Create(area).Error
}

func (r *repository) FindActiveByCompany(ctx context.Context, companyID string) ([]Area, error) {
	var areas []Area
	err := r.db.WithContext(ctx).
		Scopes(scope.Company(companyID), scope.Active("areas")).
		Order("name ASC").
		Find(&areas).Error
	return areas, err
}

func (r *repository) FindActiveByID(ctx context.Context, id string) (*Area, error) {
	var area Area
	err := r.db.WithContext(ctx).
		Scopes(scope.Active("areas")).
		First(&area, "id = ?", id).Error
	return &area, err
}

func (r *repository) FindActiveInCompany(ctx context.Context, companyID, id string) (*Area, error) {
	var area Area
	err := r.db.WithContext(ctx).
		Scopes(scope.Company(companyID), scope.Active("areas")).
		First(&area, "id = ?", id).Error
	return &area, err
}

func (r *repository) Update(ctx context.Context, area *Area) error {
	return r.db.WithContext(ctx).Save(area).Error
}

func (r *repository) Deactivate(ctx context.Context, id string) (*Area, error) {
	res := r.db.WithContext(ctx).
		Model(&Area{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": gorm.Expr("now()")})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var area Area
	err := r.db.WithContext(ctx).First(&area, "id = ?", id).Error
	return &area, err
}
