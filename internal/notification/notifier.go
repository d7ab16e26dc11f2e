// Package notification delivers domain events to people. Delivery channels
// (email, chat) plug in behind Notifier; the default one writes to the log.
package notification

import (
	"context"

	"github.com/LiquidSebabas/InnOutPG/internal/events"

	"go.uber.org/zap"
)

type Notifier interface {
	NotifyAssignment(ctx context.Context, event events.AssignmentEvent) error
	NotifyDocumentExpiry(ctx context.Context, event events.DocumentExpiryAlertEvent) error
	NotifyEmployee(ctx context.Context, event events.EmployeeEvent) error
}

type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger ...*zap.Logger) *LogNotifier {
	l := zap.L().Named("notification")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification")
	}
	return &LogNotifier{logger: l}
}

func (n *LogNotifier) NotifyAssignment(_ context.Context, event events.AssignmentEvent) error {
	n.logger.Info("assignment notification",
		zap.String("event_type", event.EventType),
		zap.String("assignment_id", event.AssignmentID),
		zap.String("employee_id", event.EmployeeID),
		zap.String("shift_date", event.ShiftDate),
		zap.String("start_time", event.StartTime),
		zap.String("end_time", event.EndTime),
		zap.String("status", event.Status),
		zap.String("reason", event.Reason),
	)
	return nil
}

func (n *LogNotifier) NotifyDocumentExpiry(_ context.Context, event events.DocumentExpiryAlertEvent) error {
	n.logger.Warn("document expiry notification",
		zap.String("employee_id", event.EmployeeID),
		zap.String("employee_name", event.EmployeeName),
		zap.String("email", event.Email),
		zap.String("consolidated_expiry", event.ConsolidatedExpiry),
		zap.String("status", event.Status),
		zap.Int("days_until", event.DaysUntil),
	)
	return nil
}

func (n *LogNotifier) NotifyEmployee(_ context.Context, event events.EmployeeEvent) error {
	n.logger.Info("employee notification",
		zap.String("event_type", event.EventType),
		zap.String("employee_id", event.EmployeeID),
		zap.String("document_status", event.DocumentStatus),
	)
	return nil
}
