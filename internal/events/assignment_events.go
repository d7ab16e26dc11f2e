package events

import "time"

const (
	AssignmentCreated       = "assignment_created"
	AssignmentCancelled     = "assignment_cancelled"
	AssignmentStatusChanged = "assignment_status_changed"
)

type AssignmentEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	AssignmentID   string    `json:"assignment_id"`
	ShiftID        string    `json:"shift_id"`
	EmployeeID     string    `json:"employee_id"`
	ShiftDate      string    `json:"shift_date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	ActorID        string    `json:"actor_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
