package events

import "time"

const DocumentExpiryAlert = "document_expiry_alert"

type DocumentExpiryAlertEvent struct {
	EventType          string    `json:"event_type"`
	EmployeeID         string    `json:"employee_id"`
	EmployeeName       string    `json:"employee_name"`
	Email              string    `json:"email"`
	ConsolidatedExpiry string    `json:"consolidated_expiry"`
	AlertFrom          string    `json:"alert_from"`
	Status             string    `json:"status"`
	DaysUntil          int       `json:"days_until"`
	OccurredAt         time.Time `json:"occurred_at"`
}
