package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/timeinterval"
)

// IntervalSource lists an employee's non-cancelled assignments on a date,
// optionally leaving one assignment out.
type IntervalSource interface {
	ActiveOnDate(ctx context.Context, employeeID string, date time.Time, excludeID *string) ([]ScheduledInterval, error)
}

// ConflictChecker decides whether a proposed shift collides with an
// employee's existing work that day. It never writes.
type ConflictChecker struct {
	source IntervalSource
}

func NewConflictChecker(source IntervalSource) *ConflictChecker {
	return &ConflictChecker{source: source}
}

func (c *ConflictChecker) HasConflict(ctx context.Context, employeeID string, date time.Time, proposed timeinterval.Interval, excludeID *string) (bool, error) {
	conflicts, err := c.FindConflicts(ctx, employeeID, date, proposed, excludeID)
	if err != nil {
		return false, err
	}
	return len(conflicts) > 0, nil
}

// FindConflicts returns every existing assignment that overlaps proposed.
func (c *ConflictChecker) FindConflicts(ctx context.Context, employeeID string, date time.Time, proposed timeinterval.Interval, excludeID *string) ([]ScheduledInterval, error) {
	existing, err := c.source.ActiveOnDate(ctx, employeeID, date, excludeID)
	if err != nil {
		return nil, err
	}

	var conflicts []ScheduledInterval
	for _, e := range existing {
		iv, err := timeinterval.Parse(timeinterval.FormatClock(e.StartTime), timeinterval.FormatClock(e.EndTime))
		if err != nil {
			return nil, fmt.Errorf("assignment %s has unreadable times %q-%q: %w", e.AssignmentID, e.StartTime, e.EndTime, err)
		}
		if timeinterval.IntervalsOverlap(proposed, iv) {
			conflicts = append(conflicts, e)
		}
	}
	return conflicts, nil
}
