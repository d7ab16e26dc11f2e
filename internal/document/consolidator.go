package document

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// ExpiringSoonDays is the inclusive upper bound for expiring_soon.
	ExpiringSoonDays = 30
	// AlertLeadDays is how long before expiry alerting begins.
	AlertLeadDays = 60
)

// Consolidate derives the status of set as of today. Both the stored dates
// and today are compared as calendar dates.
func Consolidate(set DocumentSet, today time.Time) ConsolidatedStatus {
	out := ConsolidatedStatus{
		EmployeeID: set.EmployeeID,
		Status:     StatusValid,
	}

	expiries := set.Expiries()
	if len(expiries) == 0 {
		return out
	}

	nearest := dateOnly(expiries[0])
	for _, e := range expiries[1:] {
		if d := dateOnly(e); d.Before(nearest) {
			nearest = d
		}
	}
	alertFrom := nearest.AddDate(0, 0, -AlertLeadDays)

	out.ConsolidatedExpiry = &nearest
	out.AlertFrom = &alertFrom
	out.Status = classify(DaysUntil(nearest, today))
	return out
}

// DaysUntil counts calendar days from today to expiry; negative once past.
func DaysUntil(expiry, today time.Time) int {
	return int(dateOnly(expiry).Sub(dateOnly(today)).Hours() / 24)
}

func classify(days int) Status {
	switch {
	case days < 0:
		return StatusExpired
	case days <= ExpiringSoonDays:
		return StatusExpiringSoon
	default:
		return StatusValid
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Consolidator runs Consolidate against storage using the business time zone
// to decide what "today" is.
type Consolidator struct {
	loc *time.Location
	now func() time.Time
}

func NewConsolidator(loc *time.Location) *Consolidator {
	if loc == nil {
		loc = time.UTC
	}
	return &Consolidator{loc: loc, now: time.Now}
}

// WithClock returns a copy that reads the current time from now.
func (c *Consolidator) WithClock(now func() time.Time) *Consolidator {
	return &Consolidator{loc: c.loc, now: now}
}

// Today is the current calendar date in the business time zone, as UTC
// midnight.
func (c *Consolidator) Today() time.Time {
	return dateOnly(c.now().In(c.loc))
}

// Recompute locks the employee's DocumentSet, derives its status and upserts
// it. repo must be bound to the caller's transaction. A missing set counts
// as empty. changed is false when the stored row already matched.
func (c *Consolidator) Recompute(ctx context.Context, repo Repository, employeeID string) (ConsolidatedStatus, bool, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return ConsolidatedStatus{}, false, err
	}

	set, err := repo.LockSet(ctx, employeeID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		set = &DocumentSet{EmployeeID: id}
	case err != nil:
		return ConsolidatedStatus{}, false, err
	}

	status := Consolidate(*set, c.Today())
	status.EmployeeID = id
	status.CalculatedAt = c.now().UTC()

	changed, err := repo.UpsertStatus(ctx, status)
	if err != nil {
		return ConsolidatedStatus{}, false, err
	}
	if !changed {
		stored, err := repo.FindStatus(ctx, employeeID)
		if err != nil {
			return ConsolidatedStatus{}, false, err
		}
		return *stored, false, nil
	}
	return status, true, nil
}
