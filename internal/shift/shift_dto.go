package shift

import (
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/timeinterval"
)

type AvailableQuery struct {
	Date      string  `form:"date" json:"date" binding:"required,isodate"`
	CompanyID *string `form:"company_id" json:"company_id" binding:"omitempty,uuid"`
	AreaID    *string `form:"area_id" json:"area_id" binding:"omitempty,uuid"`
}

type ShiftResponse struct {
	ID            string                 `json:"id"`
	ShiftDate     string                 `json:"shift_date"`
	StartTime     string                 `json:"start_time"`
	EndTime       string                 `json:"end_time"`
	ShiftType     timeinterval.ShiftType `json:"shift_type,omitempty"`
	DurationHours float64                `json:"duration_hours"`
	CompanyID     string                 `json:"company_id"`
	CompanyName   string                 `json:"company_name"`
	AreaID        string                 `json:"area_id"`
	AreaName      string                 `json:"area_name"`
	Position      *string                `json:"position,omitempty"`
	Notes         *string                `json:"notes,omitempty"`
	AssignedCount int64                  `json:"assigned_count"`
}

func mapToResponse(d ShiftDetail) ShiftResponse {
	start := timeinterval.FormatClock(d.StartTime)
	end := timeinterval.FormatClock(d.EndTime)

	resp := ShiftResponse{
		ID:            d.ID.String(),
		ShiftDate:     d.ShiftDate.Format(time.DateOnly),
		StartTime:     start,
		EndTime:       end,
		CompanyID:     d.CompanyID.String(),
		CompanyName:   d.CompanyName,
		AreaID:        d.AreaID.String(),
		AreaName:      d.AreaName,
		Position:      d.Position,
		Notes:         d.Notes,
		AssignedCount: d.AssignedCount,
	}
	if iv, err := timeinterval.Parse(start, end); err == nil {
		resp.ShiftType = timeinterval.Classify(iv.Start)
		resp.DurationHours = iv.Duration().Hours()
	}
	return resp
}
