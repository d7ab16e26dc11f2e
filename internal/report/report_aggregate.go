package report

import (
	"math"
	"sort"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/assignment"
	"github.com/LiquidSebabas/InnOutPG/internal/timeinterval"

	"github.com/google/uuid"
)

// Totals counts assignments by status. HoursWorked only includes completed
// assignments.
type Totals struct {
	Total       int     `json:"total"`
	Assigned    int     `json:"assigned"`
	Completed   int     `json:"completed"`
	Cancelled   int     `json:"cancelled"`
	Absent      int     `json:"absent"`
	HoursWorked float64 `json:"hours_worked"`
}

func (t *Totals) add(row WorkRow, hours float64) {
	t.Total++
	switch assignment.Status(row.Status) {
	case assignment.StatusAssigned:
		t.Assigned++
	case assignment.StatusCompleted:
		t.Completed++
		t.HoursWorked += hours
	case assignment.StatusCancelled:
		t.Cancelled++
	case assignment.StatusAbsent:
		t.Absent++
	}
}

func (t *Totals) merge(o Totals) {
	t.Total += o.Total
	t.Assigned += o.Assigned
	t.Completed += o.Completed
	t.Cancelled += o.Cancelled
	t.Absent += o.Absent
	t.HoursWorked += o.HoursWorked
}

func (t *Totals) round() {
	t.HoursWorked = roundHours(t.HoursWorked)
}

// CompletionRate is completed over total as a percentage, nil when there is
// nothing to rate.
func (t Totals) CompletionRate() *float64 {
	if t.Total == 0 {
		return nil
	}
	rate := roundHours(float64(t.Completed) * 100 / float64(t.Total))
	return &rate
}

type EmployeeTotals struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Totals
}

// shiftHours is the length of a row's shift; night shifts count across
// midnight. Unparseable stored times count as zero.
func shiftHours(row WorkRow) float64 {
	iv, err := timeinterval.Parse(timeinterval.FormatClock(row.StartTime), timeinterval.FormatClock(row.EndTime))
	if err != nil {
		return 0
	}
	return iv.Duration().Hours()
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// summarizeByEmployee groups rows per employee, keeping the order in which
// employees first appear.
func summarizeByEmployee(rows []WorkRow) ([]EmployeeTotals, Totals) {
	index := make(map[uuid.UUID]int)
	var out []EmployeeTotals
	var totals Totals

	for _, row := range rows {
		i, ok := index[row.EmployeeID]
		if !ok {
			i = len(out)
			index[row.EmployeeID] = i
			out = append(out, EmployeeTotals{EmployeeID: row.EmployeeID.String(), FullName: row.EmployeeName})
		}
		out[i].add(row, shiftHours(row))
	}

	for i := range out {
		totals.merge(out[i].Totals)
		out[i].round()
	}
	totals.round()
	return out, totals
}

func summarize(rows []WorkRow) Totals {
	var t Totals
	for _, row := range rows {
		t.add(row, shiftHours(row))
	}
	t.round()
	return t
}

type CompanySummary struct {
	CompanyID         string  `json:"company_id"`
	CompanyName       string  `json:"company_name"`
	Total             int     `json:"total"`
	Completed         int     `json:"completed"`
	Cancelled         int     `json:"cancelled"`
	Absent            int     `json:"absent"`
	AverageShiftHours float64 `json:"average_shift_hours"`
}

// summarizeByCompany reports every company given, including those without
// assignments, busiest first.
func summarizeByCompany(companies []CompanyRef, rows []WorkRow) []CompanySummary {
	type acc struct {
		totals Totals
		hours  time.Duration
	}
	byCompany := make(map[uuid.UUID]*acc, len(companies))
	for _, c := range companies {
		byCompany[c.ID] = &acc{}
	}
	for _, row := range rows {
		a, ok := byCompany[row.CompanyID]
		if !ok {
			continue
		}
		hours := shiftHours(row)
		a.totals.add(row, hours)
		a.hours += time.Duration(hours * float64(time.Hour))
	}

	out := make([]CompanySummary, 0, len(companies))
	for _, c := range companies {
		a := byCompany[c.ID]
		s := CompanySummary{
			CompanyID:   c.ID.String(),
			CompanyName: c.Name,
			Total:       a.totals.Total,
			Completed:   a.totals.Completed,
			Cancelled:   a.totals.Cancelled,
			Absent:      a.totals.Absent,
		}
		if a.totals.Total > 0 {
			s.AverageShiftHours = roundHours(a.hours.Hours() / float64(a.totals.Total))
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}
