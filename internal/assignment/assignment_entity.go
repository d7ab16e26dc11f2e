package assignment

import (
	"time"

	"github.com/google/uuid"
)

// Assignment links one employee to one shift on a date.
type Assignment struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShiftID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	EmployeeID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_assignments_employee_date"`
	AssignmentDate time.Time  `gorm:"type:date;not null;index:idx_assignments_employee_date"`
	Status         Status     `gorm:"type:varchar(20);not null;default:'assigned'"`
	RoleInShift    *string    `gorm:"size:100"`
	Reason         *string    `gorm:"type:text"`
	CreatedBy      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// AssignmentDetail is an assignment joined with its shift, employee, company
// and area display fields.
type AssignmentDetail struct {
	Assignment
	ShiftDate     time.Time
	StartTime     string
	EndTime       string
	Position      *string
	Notes         *string
	EmployeeName  string
	EmployeeEmail string
	CompanyID     uuid.UUID
	CompanyName   string
	AreaID        uuid.UUID
	AreaName      string
}

// ScheduledInterval is the slice of an existing assignment the conflict
// checker needs.
type ScheduledInterval struct {
	AssignmentID uuid.UUID
	ShiftID      uuid.UUID
	StartTime    string
	EndTime      string
	Status       Status
}
