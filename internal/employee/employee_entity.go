package employee

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName        string    `gorm:"not null"`
	FullNameLower   string    `gorm:"not null;index"`
	Email           string    `gorm:"not null"`
	Phone           *string
	BirthDate       *time.Time `gorm:"type:date"`
	HireDate        time.Time  `gorm:"type:date;not null"`
	TerminationDate *time.Time `gorm:"type:date"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

// SetName stores name and its lowercase search key together.
func (e *Employee) SetName(name string) {
	e.FullName = name
	e.FullNameLower = strings.ToLower(name)
}

// EmployeeOption is the lightweight projection used by selection lists.
type EmployeeOption struct {
	ID       uuid.UUID
	FullName string
	Email    string
}
