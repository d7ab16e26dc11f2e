package company

import (
	"time"

	"github.com/google/uuid"
)

// Company is a client site operator. Deactivation sets IsActive to false;
// rows are never deleted.
type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Phone     *string   `gorm:"type:varchar(20)"`
	Address   *string   `gorm:"type:text"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Company) TableName() string {
	return "companies"
}
