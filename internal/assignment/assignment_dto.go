package assignment

import (
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/timeinterval"
)

// CreateAssignmentRequest creates a shift and assigns it in one step.
// Company and area fall back to the configured defaults when omitted.
type CreateAssignmentRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	ShiftDate   string  `json:"shift_date" binding:"required,isodate"`
	StartTime   string  `json:"start_time" binding:"required,hhmm"`
	EndTime     string  `json:"end_time" binding:"required,hhmm"`
	CompanyID   *string `json:"company_id" binding:"omitempty,uuid"`
	AreaID      *string `json:"area_id" binding:"omitempty,uuid"`
	Position    *string `json:"position" binding:"omitempty,max=100"`
	RoleInShift *string `json:"role_in_shift" binding:"omitempty,max=100"`
	Notes       *string `json:"notes" binding:"omitempty,max=1000"`
}

type CancelRequest struct {
	Reason *string `json:"reason" binding:"omitempty,max=500"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=assigned completed cancelled absent"`
	Reason *string `json:"reason" binding:"omitempty,max=500"`
}

type ListQuery struct {
	From       string  `form:"from" json:"from" binding:"omitempty,isodate"`
	To         string  `form:"to" json:"to" binding:"omitempty,isodate"`
	EmployeeID *string `form:"employee_id" json:"employee_id" binding:"omitempty,uuid"`
	CompanyID  *string `form:"company_id" json:"company_id" binding:"omitempty,uuid"`
	AreaID     *string `form:"area_id" json:"area_id" binding:"omitempty,uuid"`
	Status     *string `form:"status" json:"status" binding:"omitempty,oneof=assigned completed cancelled absent"`
	Limit      int     `form:"limit" json:"limit" binding:"omitempty,min=0"`
	Offset     int     `form:"offset" json:"offset" binding:"omitempty,min=0"`
}

type AvailabilityQuery struct {
	EmployeeID          string  `form:"employee_id" json:"employee_id" binding:"required,uuid"`
	Date                string  `form:"date" json:"date" binding:"required,isodate"`
	StartTime           string  `form:"start_time" json:"start_time" binding:"required,hhmm"`
	EndTime             string  `form:"end_time" json:"end_time" binding:"required,hhmm"`
	ExcludeAssignmentID *string `form:"exclude_assignment_id" json:"exclude_assignment_id" binding:"omitempty,uuid"`
}

type CalendarQuery struct {
	From       string  `form:"from" json:"from" binding:"required,isodate"`
	To         string  `form:"to" json:"to" binding:"required,isodate"`
	EmployeeID *string `form:"employee_id" json:"employee_id" binding:"omitempty,uuid"`
	CompanyID  *string `form:"company_id" json:"company_id" binding:"omitempty,uuid"`
	AreaID     *string `form:"area_id" json:"area_id" binding:"omitempty,uuid"`
}

type AssignmentResponse struct {
	ID             string                 `json:"id"`
	ShiftID        string                 `json:"shift_id"`
	EmployeeID     string                 `json:"employee_id"`
	EmployeeName   string                 `json:"employee_name"`
	EmployeeEmail  string                 `json:"employee_email"`
	AssignmentDate string                 `json:"assignment_date"`
	StartTime      string                 `json:"start_time"`
	EndTime        string                 `json:"end_time"`
	ShiftType      timeinterval.ShiftType `json:"shift_type,omitempty"`
	DurationHours  float64                `json:"duration_hours"`
	Status         Status                 `json:"status"`
	RoleInShift    *string                `json:"role_in_shift,omitempty"`
	Reason         *string                `json:"reason,omitempty"`
	Position       *string                `json:"position,omitempty"`
	Notes          *string                `json:"notes,omitempty"`
	CompanyID      string                 `json:"company_id"`
	CompanyName    string                 `json:"company_name"`
	AreaID         string                 `json:"area_id"`
	AreaName       string                 `json:"area_name"`
	CreatedAt      string                 `json:"created_at,omitempty"`
}

type ScheduledIntervalResponse struct {
	AssignmentID string `json:"assignment_id"`
	ShiftID      string `json:"shift_id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       Status `json:"status"`
}

type AvailabilityResponse struct {
	Available bool                        `json:"available"`
	Conflicts []ScheduledIntervalResponse `json:"conflicts"`
	Existing  []ScheduledIntervalResponse `json:"existing"`
}

type CalendarDay struct {
	Date        string               `json:"date"`
	Assignments []AssignmentResponse `json:"assignments"`
}

func mapToResponse(d AssignmentDetail) AssignmentResponse {
	start := timeinterval.FormatClock(d.StartTime)
	end := timeinterval.FormatClock(d.EndTime)

	resp := AssignmentResponse{
		ID:             d.ID.String(),
		ShiftID:        d.ShiftID.String(),
		EmployeeID:     d.EmployeeID.String(),
		EmployeeName:   d.EmployeeName,
		EmployeeEmail:  d.EmployeeEmail,
		AssignmentDate: d.AssignmentDate.Format(time.DateOnly),
		StartTime:      start,
		EndTime:        end,
		Status:         d.Status,
		RoleInShift:    d.RoleInShift,
		Reason:         d.Reason,
		Position:       d.Position,
		Notes:          d.Notes,
		CompanyID:      d.CompanyID.String(),
		CompanyName:    d.CompanyName,
		AreaID:         d.AreaID.String(),
		AreaName:       d.AreaName,
	}
	if iv, err := timeinterval.Parse(start, end); err == nil {
		resp.ShiftType = timeinterval.Classify(iv.Start)
		resp.DurationHours = iv.Duration().Hours()
	}
	if !d.CreatedAt.IsZero() {
		resp.CreatedAt = d.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func mapIntervals(rows []ScheduledInterval) []ScheduledIntervalResponse {
	out := make([]ScheduledIntervalResponse, len(rows))
	for i, r := range rows {
		out[i] = ScheduledIntervalResponse{
			AssignmentID: r.AssignmentID.String(),
			ShiftID:      r.ShiftID.String(),
			StartTime:    timeinterval.FormatClock(r.StartTime),
			EndTime:      timeinterval.FormatClock(r.EndTime),
			Status:       r.Status,
		}
	}
	return out
}
