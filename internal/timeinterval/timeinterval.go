// Package timeinterval converts wall-clock times of day to minute offsets and
// compares intervals that may cross midnight.
package timeinterval

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/apperror"
)

const minutesPerDay = 24 * 60

var clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

var ErrInvalidFormat = apperror.New(
	apperror.CodeInvalidFormat,
	"Time must use the 24-hour HH:MM format",
	http.StatusBadRequest,
)

// Interval is a time-of-day range in minutes since midnight. End < Start
// means the interval crosses midnight.
type Interval struct {
	Start int
	End   int
}

// TimeToMinutes parses a 24-hour HH:MM clock value.
func TimeToMinutes(hhmm string) (int, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(hhmm))
	if m == nil {
		return 0, ErrInvalidFormat
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, nil
}

// Parse builds an Interval from two HH:MM values.
func Parse(start, end string) (Interval, error) {
	s, err := TimeToMinutes(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := TimeToMinutes(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(start, end string) Interval {
	iv, err := Parse(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

func (iv Interval) CrossesMidnight() bool {
	return iv.End < iv.Start
}

func (iv Interval) IsEmpty() bool {
	return iv.End == iv.Start
}

// Minutes is the length of the interval, counting past midnight for
// night-crossing intervals.
func (iv Interval) Minutes() int {
	if iv.CrossesMidnight() {
		return iv.End + minutesPerDay - iv.Start
	}
	return iv.End - iv.Start
}

// Duration is Minutes as a time.Duration.
func (iv Interval) Duration() time.Duration {
	return time.Duration(iv.Minutes()) * time.Minute
}

func (iv Interval) String() string {
	return FormatMinutes(iv.Start) + "-" + FormatMinutes(iv.End)
}

// IntervalsOverlap reports whether a and b share any time on the same date.
// Touching endpoints do not overlap.
func IntervalsOverlap(a, b Interval) bool {
	aCross, bCross := a.CrossesMidnight(), b.CrossesMidnight()

	switch {
	case aCross && bCross:
		return bothCrossingOverlap(a, b)
	case aCross:
		return crossingOverlap(a, b)
	case bCross:
		return crossingOverlap(b, a)
	default:
		return a.Start < b.End && a.End > b.Start
	}
}

// crossingOverlap compares a night-crossing interval with a same-day one.
// The same-day interval is clear only if it fits inside the gap between
// night.End and night.Start.
func crossingOverlap(night, day Interval) bool {
	return !(day.End <= night.Start && day.Start >= night.End)
}

// bothCrossingOverlap treats two night-crossing intervals on one date as
// conflicting.
func bothCrossingOverlap(_, _ Interval) bool {
	return true
}

// FormatMinutes renders minutes since midnight as HH:MM.
func FormatMinutes(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	h, m := minutes/60, minutes%60
	return twoDigits(h) + ":" + twoDigits(m)
}

// FormatClock trims a stored HH:MM:SS value to HH:MM. Values that are
// already short are returned unchanged.
func FormatClock(value string) string {
	if len(value) >= 5 && value[2] == ':' {
		return value[:5]
	}
	return value
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
