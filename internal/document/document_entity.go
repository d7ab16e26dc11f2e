package document

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusValid        Status = "valid"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
)

// DocumentSet is an employee's papelería. Every field is optional.
type DocumentSet struct {
	EmployeeID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	JudicialRecord        bool       `gorm:"not null;default:false"`
	PoliceRecord          bool       `gorm:"not null;default:false"`
	HealthIssuedAt        *time.Time `gorm:"type:date"`
	HealthExpiresAt       *time.Time `gorm:"type:date"`
	FoodHandlingIssuedAt  *time.Time `gorm:"type:date"`
	FoodHandlingExpiresAt *time.Time `gorm:"type:date"`
	LungsIssuedAt         *time.Time `gorm:"type:date"`
	LungsExpiresAt        *time.Time `gorm:"type:date"`
	CreatedAt             time.Time  `gorm:"autoCreateTime"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime"`
}

func (DocumentSet) TableName() string {
	return "document_sets"
}

// Expiries returns the non-nil expiry dates of the tracked documents.
func (d DocumentSet) Expiries() []time.Time {
	out := make([]time.Time, 0, 3)
	for _, t := range []*time.Time{d.HealthExpiresAt, d.FoodHandlingExpiresAt, d.LungsExpiresAt} {
		if t != nil {
			out = append(out, *t)
		}
	}
	return out
}

// ConsolidatedStatus is derived from a DocumentSet by the Consolidator and
// never written any other way.
type ConsolidatedStatus struct {
	EmployeeID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ConsolidatedExpiry *time.Time `gorm:"type:date"`
	AlertFrom          *time.Time `gorm:"type:date"`
	Status             Status     `gorm:"type:varchar(20);not null"`
	CalculatedAt       time.Time
}

func (ConsolidatedStatus) TableName() string {
	return "document_statuses"
}

// SameDerivedValues compares the fields the consolidator derives.
func (c ConsolidatedStatus) SameDerivedValues(o ConsolidatedStatus) bool {
	return c.Status == o.Status &&
		sameDate(c.ConsolidatedExpiry, o.ConsolidatedExpiry) &&
		sameDate(c.AlertFrom, o.AlertFrom)
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return dateOnly(*a).Equal(dateOnly(*b))
}

// ExpiringRow is a status joined with its employee's contact fields.
type ExpiringRow struct {
	EmployeeID         uuid.UUID
	FullName           string
	Email              string
	Phone              *string
	ConsolidatedExpiry time.Time
	AlertFrom          time.Time
	Status             Status
}
