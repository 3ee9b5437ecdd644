// Package deadline converts between locale-ordered user dates and the
// canonical YYYY-MM-DD form stored in task records.
package deadline

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the canonical stored form of a deadline.
const Layout = "2006-01-02"

// Order is the field order of a locale date.
type Order int

const (
	// MonthFirst is MM/DD/YYYY.
	MonthFirst Order = iota
	// DayFirst is DD/MM/YYYY.
	DayFirst
)

// OrderFor returns the field order used by lang. Portuguese locales are
// day-first; everything else is month-first.
func OrderFor(lang string) Order {
	if strings.HasPrefix(strings.ToLower(lang), "pt") {
		return DayFirst
	}
	return MonthFirst
}

// Hint is the placeholder shown when asking for a date in this order.
func (o Order) Hint() string {
	if o == DayFirst {
		return "DD/MM/YYYY"
	}
	return "MM/DD/YYYY"
}

// Parse converts a free-text date using '/', '.' or '-' separators into
// YYYY-MM-DD. Input whose first field has four digits is read as
// year-month-day regardless of order. Empty input yields "". Input that
// does not split into three numeric fields is returned unchanged.
//
// If the month field is above 12 while the day field is not, the two are
// swapped. This is best effort: ambiguous dates such as 05/06/2025 are
// taken in the order given.
func Parse(input string, order Order) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	parts := strings.FieldsFunc(input, func(r rune) bool {
		return r == '/' || r == '.' || r == '-'
	})
	if len(parts) != 3 {
		return input
	}

	var year, month, day string
	switch {
	case len(parts[0]) == 4:
		year, month, day = parts[0], parts[1], parts[2]
	case order == DayFirst:
		day, month, year = parts[0], parts[1], parts[2]
	default:
		month, day, year = parts[0], parts[1], parts[2]
	}

	y, m, d, ok := atoi3(year, month, day)
	if !ok {
		return input
	}
	m, d = repair(m, d)

	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// Format renders a stored deadline in the given order, e.g. 03/05/2025.
// Only the first ten characters are considered, so a stray time component
// is ignored. The same month/day repair as Parse is applied, so values
// stored swapped display correctly. Unrecognised values are returned as is.
func Format(stored string, order Order) string {
	y, m, d, ok := fields(stored)
	if !ok {
		return stored
	}

	if order == DayFirst {
		return fmt.Sprintf("%02d/%02d/%04d", d, m, y)
	}
	return fmt.Sprintf("%02d/%02d/%04d", m, d, y)
}

// Canonical truncates a stored deadline to its date part.
func Canonical(stored string) string {
	stored = strings.TrimSpace(stored)
	if len(stored) > len(Layout) {
		return stored[:len(Layout)]
	}
	return stored
}

// Status classifies a deadline against the current day.
type Status int

const (
	// None means no deadline or one that cannot be read.
	None Status = iota
	// Overdue is strictly before today.
	Overdue
	// DueToday is today.
	DueToday
	// Upcoming is after today.
	Upcoming
)

func (s Status) String() string {
	switch s {
	case Overdue:
		return "overdue"
	case DueToday:
		return "today"
	case Upcoming:
		return "upcoming"
	default:
		return "none"
	}
}

// Classify compares a stored deadline with now at day granularity in
// now's location.
func Classify(stored string, now time.Time) Status {
	y, m, d, ok := fields(stored)
	if !ok {
		return None
	}

	due := time.Date(y, time.Month(m), d, 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case due.Before(today):
		return Overdue
	case due.Equal(today):
		return DueToday
	default:
		return Upcoming
	}
}

// Date returns the stored deadline as a time at midnight in loc.
func Date(stored string, loc *time.Location) (time.Time, bool) {
	y, m, d, ok := fields(stored)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc), true
}

// fields splits a canonical value into repaired numeric parts.
func fields(stored string) (y, m, d int, ok bool) {
	stored = Canonical(stored)
	if len(stored) != len(Layout) {
		return 0, 0, 0, false
	}

	parts := strings.Split(stored, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}

	y, m, d, ok = atoi3(parts[0], parts[1], parts[2])
	if !ok {
		return 0, 0, 0, false
	}
	m, d = repair(m, d)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return 0, 0, 0, false
	}
	return y, m, d, true
}

func repair(month, day int) (int, int) {
	if month > 12 && day <= 12 {
		return day, month
	}
	return month, day
}

func atoi3(a, b, c string) (int, int, int, bool) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, 0, false
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, 0, false
	}
	z, err := strconv.Atoi(c)
	if err != nil {
		return 0, 0, 0, false
	}
	return x, y, z, true
}
