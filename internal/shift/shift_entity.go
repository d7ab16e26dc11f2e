package shift

import (
	"time"

	"github.com/google/uuid"
)

// Shift is a block of work on one date. EndTime earlier than StartTime means
// the shift runs past midnight.
type Shift struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShiftDate time.Time  `gorm:"type:date;not null;index:idx_shifts_date_company"`
	StartTime string     `gorm:"type:time;not null"`
	EndTime   string     `gorm:"type:time;not null"`
	CompanyID uuid.UUID  `gorm:"type:uuid;not null;index:idx_shifts_date_company"`
	AreaID    uuid.UUID  `gorm:"type:uuid;not null"`
	Position  *string    `gorm:"size:100"`
	Notes     *string    `gorm:"type:text"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (Shift) TableName() string {
	return "shifts"
}

// ShiftDetail is a shift joined with its display names and the number of
// non-cancelled assignments on it.
type ShiftDetail struct {
	Shift
	CompanyName   string
	AreaName      string
	AssignedCount int64
}
