package report

import (
	"time"

	"github.com/google/uuid"
)

// WorkRow is one assignment joined with the shift, employee, company and
// area it belongs to.
type WorkRow struct {
	AssignmentID   uuid.UUID
	EmployeeID     uuid.UUID
	EmployeeName   string
	CompanyID      uuid.UUID
	CompanyName    string
	AreaID         uuid.UUID
	AreaName       string
	AssignmentDate time.Time
	Status         string
	StartTime      string
	EndTime        string
}

type DashboardCounts struct {
	ActiveEmployees int64
	ActiveCompanies int64
	ShiftsToday     int64
	ExpiringSoon    int64
	Expired         int64
}

// RosterRow is one non-deleted employee with their document status and
// recent assignment activity.
type RosterRow struct {
	EmployeeID         uuid.UUID
	FullName           string
	Phone              *string
	Email              string
	HireDate           time.Time
	CreatedAt          time.Time
	DocumentStatus     *string
	ConsolidatedExpiry *time.Time
	RecentShifts       int64
	LastShiftDate      *time.Time
}

type CompanyRef struct {
	ID   uuid.UUID
	Name string
}
