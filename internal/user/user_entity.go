package user

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is a console account. Role is one of domain.Roles().
type UserProfile struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	Role         string    `gorm:"column:role;type:varchar(20);not null"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
