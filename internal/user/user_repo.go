package user

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *UserProfile) error
	FindByID(ctx context.Context, id string) (*UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*UserProfile, error)
	FindAll(ctx context.Context) ([]UserProfile, error)
	Update(ctx context.Context, u *UserProfile) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *UserProfile) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*UserProfile, error) {
	var u UserProfile
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*UserProfile, error) {
	var u UserProfile
	err := r.db.WithContext(ctx).First(&u, "LOWER(email) = LOWER(?)", email).Error
	return &u, err
}

func (r *repository) FindAll(ctx context.Context) ([]UserProfile, error) {
	var users []UserProfile
	err := r.db.WithContext(ctx).Order("name ASC").Find(&users).Error
	return users, err
}

func (r *repository) Update(ctx context.Context, u *UserProfile) error {
	return r.db.WithContext(ctx).Save(u).Error
}
