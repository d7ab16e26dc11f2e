package employee

import (
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/document"
)

// EmployeeFields is the writable part of an employee plus its documents.
type EmployeeFields struct {
	FullName        string                     `json:"full_name" binding:"required,max=150"`
	Email           string                     `json:"email" binding:"required,email,max=150"`
	Phone           *string                    `json:"phone" binding:"omitempty,gtphone"`
	BirthDate       *string                    `json:"birth_date" binding:"omitempty,isodate"`
	HireDate        *string                    `json:"hire_date" binding:"omitempty,isodate"`
	TerminationDate *string                    `json:"termination_date" binding:"omitempty,isodate"`
	Papeleria       *document.PapeleriaRequest `json:"papeleria"`
}

// CreateEmployeeRequest always writes a document set; a missing papeleria
// gives one with every flag false and every date null.
type CreateEmployeeRequest EmployeeFields

// UpdateEmployeeRequest replaces the employee fields. Documents are only
// rewritten when Papeleria is present.
type UpdateEmployeeRequest EmployeeFields

type ListQuery struct {
	Search   string `form:"search" json:"search" binding:"omitempty,max=100"`
	Page     int    `form:"page" json:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" json:"page_size" binding:"omitempty,min=1,max=200"`
}

func (q ListQuery) normalized() (page, pageSize int) {
	page, pageSize = q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

type EmailExistsRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type EmployeeResponse struct {
	ID              string                        `json:"id"`
	FullName        string                        `json:"full_name"`
	Email           string                        `json:"email"`
	Phone           *string                       `json:"phone"`
	BirthDate       *string                       `json:"birth_date"`
	HireDate        string                        `json:"hire_date"`
	TerminationDate *string                       `json:"termination_date"`
	CreatedAt       string                        `json:"created_at,omitempty"`
	UpdatedAt       string                        `json:"updated_at,omitempty"`
	Documents       *document.DocumentSetResponse `json:"documents,omitempty"`
	DocumentStatus  *document.StatusResponse      `json:"document_status,omitempty"`
}

type EmployeeListItem struct {
	ID                 string  `json:"id"`
	FullName           string  `json:"full_name"`
	Email              string  `json:"email"`
	Phone              *string `json:"phone"`
	HireDate           string  `json:"hire_date"`
	TerminationDate    *string `json:"termination_date"`
	DocumentStatus     *string `json:"document_status"`
	ConsolidatedExpiry *string `json:"consolidated_expiry"`
}

type EmployeeOptionResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type EmailExistsResponse struct {
	Exists bool `json:"exists"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID.String(),
		FullName:        e.FullName,
		Email:           e.Email,
		Phone:           e.Phone,
		BirthDate:       formatDate(e.BirthDate),
		HireDate:        e.HireDate.Format(time.DateOnly),
		TerminationDate: formatDate(e.TerminationDate),
		CreatedAt:       formatTimestamp(e.CreatedAt),
		UpdatedAt:       formatTimestamp(e.UpdatedAt),
	}
}

func mapToListItem(s EmployeeSummary) EmployeeListItem {
	return EmployeeListItem{
		ID:                 s.ID.String(),
		FullName:           s.FullName,
		Email:              s.Email,
		Phone:              s.Phone,
		HireDate:           s.HireDate.Format(time.DateOnly),
		TerminationDate:    formatDate(s.TerminationDate),
		DocumentStatus:     s.DocumentStatus,
		ConsolidatedExpiry: formatDate(s.ConsolidatedExpiry),
	}
}

func mapToOptions(opts []EmployeeOption) []EmployeeOptionResponse {
	res := make([]EmployeeOptionResponse, len(opts))
	for i, o := range opts {
		res[i] = EmployeeOptionResponse{ID: o.ID.String(), FullName: o.FullName, Email: o.Email}
	}
	return res
}
