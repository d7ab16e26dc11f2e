package company

import (
	"context"
	"database/sql"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/dbtx"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, company *Company) error
	FindAllActive(ctx context.Context) ([]Company, error)
	FindActiveByID(ctx context.Context, id string) (*Company, error)
	Update(ctx context.Context, company *Company) error
	Deactivate(ctx context.Context, id string) (*Company, error)
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

func (r *repository) Create(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *repository) FindAllActive(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).
		Scopes(scope.Active("companies")).
		Order("name ASC").
		Find(&companies).Error
	return companies, err
}

func (r *repository) FindActiveByID(ctx context.Context, id string) (*Company, error) {
	var company Company
	err := r.db.WithContext(ctx).
		Scopes(scope.Active("companies")).
		First(&company, "id = ?", id).Error
	return &company, err
}

func (r *repository) Update(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// Deactivate flips is_active regardless of its current value and returns
// gorm.ErrRecordNotFound for an unknown id.
func (r *repository) Deactivate(ctx context.Context, id string) (*Company, error) {
	res := r.db.WithContext(ctx).
		Model(&Company{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": gorm.Expr("now()")})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var company Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	return &company, err
}
