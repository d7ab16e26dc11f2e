package rbac

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PolicyRow struct {
	Role     string `gorm:"primaryKey;type:varchar(20)"`
	Resource string `gorm:"primaryKey;type:varchar(50)"`
	Action   string `gorm:"primaryKey;type:varchar(50)"`
}

func (PolicyRow) TableName() string {
	return "role_permissions"
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListPolicies(ctx context.Context) ([]PolicyRow, error)
	AddPolicies(ctx context.Context, rows []PolicyRow) error
	RemovePolicy(ctx context.Context, row PolicyRow) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListPolicies(ctx context.Context) ([]PolicyRow, error) {
	var rows []PolicyRow
	err := r.db.WithContext(ctx).
		Order("role, resource, action").
		Find(&rows).Error
	return rows, err
}

func (r *repository) AddPolicies(ctx context.Context, rows []PolicyRow) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *repository) RemovePolicy(ctx context.Context, row PolicyRow) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("role = ? AND resource = ? AND action = ?", row.Role, row.Resource, row.Action).
		Delete(&PolicyRow{})
	return res.RowsAffected > 0, res.Error
}
