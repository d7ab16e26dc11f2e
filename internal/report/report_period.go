package report

import (
	"strings"
	"time"

	reporterrors "github.com/LiquidSebabas/InnOutPG/internal/report/errors"
	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
)

// MaxRangeDays bounds how many days one report may cover.
const MaxRangeDays = 366

// Period is an inclusive date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// BiweeklyPeriod returns the fortnight containing day: the 1st to the 15th,
// or the 16th to the last day of the month.
func BiweeklyPeriod(day time.Time) Period {
	y, m, d := day.Date()
	if d <= 15 {
		return Period{
			Start: time.Date(y, m, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(y, m, 15, 0, 0, 0, 0, time.UTC),
		}
	}
	return Period{
		Start: time.Date(y, m, 16, 0, 0, 0, 0, time.UTC),
		End:   time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC),
	}
}

// Days counts the calendar days in p, both ends included.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// resolvePeriod parses an explicit range, or falls back to the fortnight
// containing today when both ends are blank.
func resolvePeriod(start, end string, today time.Time) (Period, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" && end == "" {
		return BiweeklyPeriod(today), nil
	}
	if start == "" || end == "" {
		return Period{}, reporterrors.ErrIncompleteRange
	}

	from, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return Period{}, apperror.InvalidFormat("start_date", "YYYY-MM-DD")
	}
	to, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return Period{}, apperror.InvalidFormat("end_date", "YYYY-MM-DD")
	}

	p := Period{Start: from, End: to}
	if to.Before(from) {
		return Period{}, reporterrors.ErrInvalidDateRange
	}
	if p.Days() > MaxRangeDays {
		return Period{}, reporterrors.ErrRangeTooLong
	}
	return p, nil
}
