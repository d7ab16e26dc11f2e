package report

import "time"

type RangeQuery struct {
	StartDate string `form:"start_date" json:"start_date" binding:"omitempty,isodate"`
	EndDate   string `form:"end_date" json:"end_date" binding:"omitempty,isodate"`
}

type BiweeklyQuery struct {
	RangeQuery
	CompanyID string `form:"company_id" json:"company_id" binding:"omitempty,uuid"`
	AreaID    string `form:"area_id" json:"area_id" binding:"omitempty,uuid"`
}

type RosterQuery struct {
	CompanyID string `form:"company_id" json:"company_id" binding:"omitempty,uuid"`
	AreaID    string `form:"area_id" json:"area_id" binding:"omitempty,uuid"`
}

type PeriodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type DashboardResponse struct {
	ActiveEmployees     int64  `json:"active_employees"`
	ActiveCompanies     int64  `json:"active_companies"`
	ShiftsToday         int64  `json:"shifts_today"`
	DocumentsExpiring30 int64  `json:"documents_expiring_30_days"`
	DocumentsExpired    int64  `json:"documents_expired"`
	GeneratedAt         string `json:"generated_at"`
}

type BiweeklyFilters struct {
	CompanyID *string `json:"company_id"`
	AreaID    *string `json:"area_id"`
}

type BiweeklyResponse struct {
	Period        PeriodResponse   `json:"period"`
	Filters       BiweeklyFilters  `json:"filters"`
	Employees     []EmployeeTotals `json:"employees"`
	Totals        Totals           `json:"totals"`
	EmployeeCount int              `json:"employee_count"`
	GeneratedAt   string           `json:"generated_at"`
}

type EmployeeStatsResponse struct {
	EmployeeID string         `json:"employee_id"`
	FullName   string         `json:"full_name"`
	Period     PeriodResponse `json:"period"`
	Totals
}

type CompanySummaryResponse struct {
	Period      PeriodResponse   `json:"period"`
	Companies   []CompanySummary `json:"companies"`
	GeneratedAt string           `json:"generated_at"`
}

type ProductivityResponse struct {
	Period         PeriodResponse `json:"period"`
	Total          int            `json:"total"`
	Completed      int            `json:"completed"`
	Cancelled      int            `json:"cancelled"`
	Absent         int            `json:"absent"`
	CompletionRate *float64       `json:"completion_rate"`
	HoursWorked    float64        `json:"hours_worked"`
}

type RosterEmployee struct {
	EmployeeID         string  `json:"employee_id"`
	FullName           string  `json:"full_name"`
	Phone              *string `json:"phone"`
	Email              string  `json:"email"`
	HireDate           string  `json:"hire_date"`
	CreatedAt          string  `json:"created_at"`
	DocumentStatus     *string `json:"document_status"`
	ConsolidatedExpiry *string `json:"consolidated_expiry"`
	RecentShifts       int64   `json:"recent_shifts"`
	LastShiftDate      *string `json:"last_shift_date"`
}

type EmployeesByAreaResponse struct {
	Filters        BiweeklyFilters  `json:"filters"`
	Employees      []RosterEmployee `json:"employees"`
	TotalEmployees int              `json:"total_employees"`
	GeneratedAt    string           `json:"generated_at"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

func mapRoster(rows []RosterRow) []RosterEmployee {
	out := make([]RosterEmployee, 0, len(rows))
	for _, r := range rows {
		out = append(out, RosterEmployee{
			EmployeeID:         r.EmployeeID.String(),
			FullName:           r.FullName,
			Phone:              r.Phone,
			Email:              r.Email,
			HireDate:           r.HireDate.Format(time.DateOnly),
			CreatedAt:          r.CreatedAt.UTC().Format(time.RFC3339),
			DocumentStatus:     r.DocumentStatus,
			ConsolidatedExpiry: formatDate(r.ConsolidatedExpiry),
			RecentShifts:       r.RecentShifts,
			LastShiftDate:      formatDate(r.LastShiftDate),
		})
	}
	return out
}

func mapPeriod(p Period) PeriodResponse {
	return PeriodResponse{
		StartDate: p.Start.Format(time.DateOnly),
		EndDate:   p.End.Format(time.DateOnly),
	}
}
