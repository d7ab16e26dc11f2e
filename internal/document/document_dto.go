package document

import (
	"strings"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
)

// PapeleriaRequest carries the document fields of an employee write.
// Missing flags default to false and missing dates to null.
type PapeleriaRequest struct {
	JudicialRecord        *bool   `json:"judicial_record"`
	PoliceRecord          *bool   `json:"police_record"`
	HealthIssuedAt        *string `json:"health_issued_at" binding:"omitempty,isodate"`
	HealthExpiresAt       *string `json:"health_expires_at" binding:"omitempty,isodate"`
	FoodHandlingIssuedAt  *string `json:"food_handling_issued_at" binding:"omitempty,isodate"`
	FoodHandlingExpiresAt *string `json:"food_handling_expires_at" binding:"omitempty,isodate"`
	LungsIssuedAt         *string `json:"lungs_issued_at" binding:"omitempty,isodate"`
	LungsExpiresAt        *string `json:"lungs_expires_at" binding:"omitempty,isodate"`
}

// Apply overwrites every field of set from the request.
func (p PapeleriaRequest) Apply(set *DocumentSet) error {
	set.JudicialRecord = p.JudicialRecord != nil && *p.JudicialRecord
	set.PoliceRecord = p.PoliceRecord != nil && *p.PoliceRecord

	dates := []struct {
		field string
		in    *string
		out   **time.Time
	}{
		{"health_issued_at", p.HealthIssuedAt, &set.HealthIssuedAt},
		{"health_expires_at", p.HealthExpiresAt, &set.HealthExpiresAt},
		{"food_handling_issued_at", p.FoodHandlingIssuedAt, &set.FoodHandlingIssuedAt},
		{"food_handling_expires_at", p.FoodHandlingExpiresAt, &set.FoodHandlingExpiresAt},
		{"lungs_issued_at", p.LungsIssuedAt, &set.LungsIssuedAt},
		{"lungs_expires_at", p.LungsExpiresAt, &set.LungsExpiresAt},
	}
	for _, d := range dates {
		t, err := ParseDate(d.field, d.in)
		if err != nil {
			return err
		}
		*d.out = t
	}
	return nil
}

// ParseDate parses an optional YYYY-MM-DD value; nil and blank give nil.
func ParseDate(field string, v *string) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(*v))
	if err != nil {
		return nil, apperror.InvalidFormat(field, "YYYY-MM-DD")
	}
	return &t, nil
}

type DocumentSetResponse struct {
	JudicialRecord        bool    `json:"judicial_record"`
	PoliceRecord          bool    `json:"police_record"`
	HealthIssuedAt        *string `json:"health_issued_at"`
	HealthExpiresAt       *string `json:"health_expires_at"`
	FoodHandlingIssuedAt  *string `json:"food_handling_issued_at"`
	FoodHandlingExpiresAt *string `json:"food_handling_expires_at"`
	LungsIssuedAt         *string `json:"lungs_issued_at"`
	LungsExpiresAt        *string `json:"lungs_expires_at"`
}

type StatusResponse struct {
	EmployeeID         string  `json:"employee_id"`
	ConsolidatedExpiry *string `json:"consolidated_expiry"`
	AlertFrom          *string `json:"alert_from"`
	Status             Status  `json:"status"`
	DaysUntil          *int    `json:"days_until,omitempty"`
	CalculatedAt       string  `json:"calculated_at,omitempty"`
}

type DocumentsResponse struct {
	EmployeeID string              `json:"employee_id"`
	Documents  DocumentSetResponse `json:"documents"`
	Status     StatusResponse      `json:"status"`
}

type ExpiringResponse struct {
	EmployeeID         string  `json:"employee_id"`
	FullName           string  `json:"full_name"`
	Email              string  `json:"email"`
	Phone              *string `json:"phone,omitempty"`
	ConsolidatedExpiry string  `json:"consolidated_expiry"`
	AlertFrom          string  `json:"alert_from"`
	Status             Status  `json:"status"`
	DaysUntil          int     `json:"days_until"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

func MapSet(set DocumentSet) DocumentSetResponse {
	return DocumentSetResponse{
		JudicialRecord:        set.JudicialRecord,
		PoliceRecord:          set.PoliceRecord,
		HealthIssuedAt:        formatDate(set.HealthIssuedAt),
		HealthExpiresAt:       formatDate(set.HealthExpiresAt),
		FoodHandlingIssuedAt:  formatDate(set.FoodHandlingIssuedAt),
		FoodHandlingExpiresAt: formatDate(set.FoodHandlingExpiresAt),
		LungsIssuedAt:         formatDate(set.LungsIssuedAt),
		LungsExpiresAt:        formatDate(set.LungsExpiresAt),
	}
}

// MapStatus renders status; days_until is filled when an expiry exists.
func MapStatus(status ConsolidatedStatus, today time.Time) StatusResponse {
	resp := StatusResponse{
		EmployeeID:         status.EmployeeID.String(),
		ConsolidatedExpiry: formatDate(status.ConsolidatedExpiry),
		AlertFrom:          formatDate(status.AlertFrom),
		Status:             status.Status,
	}
	if status.ConsolidatedExpiry != nil {
		days := DaysUntil(*status.ConsolidatedExpiry, today)
		resp.DaysUntil = &days
	}
	if !status.CalculatedAt.IsZero() {
		resp.CalculatedAt = status.CalculatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func mapExpiring(row ExpiringRow, today time.Time) ExpiringResponse {
	return ExpiringResponse{
		EmployeeID:         row.EmployeeID.String(),
		FullName:           row.FullName,
		Email:              row.Email,
		Phone:              row.Phone,
		ConsolidatedExpiry: row.ConsolidatedExpiry.Format(time.DateOnly),
		AlertFrom:          row.AlertFrom.Format(time.DateOnly),
		Status:             row.Status,
		DaysUntil:          DaysUntil(row.ConsolidatedExpiry, today),
	}
}
