// Package schedule implements the monthly roster projection core: the
// base-schedule resolver, the event projection engine and the interactive
// edit state machine. It is pure Go with no persistence or transport
// dependencies; callers feed it records and read back display state.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Shift statuses as they are stored and displayed.
const (
	StatusWorkday   = "上班"
	StatusRest      = "休息"
	StatusWeeklyOff = "例假"
)

// Event types.
const (
	EventLeave        = "請假"
	EventSubstitution = "代班"
	EventShiftSwap    = "調班"
	EventDateSwap     = "調假"
	EventOvertime     = "加班"
)

// EventTypes lists all event types in display order.
var EventTypes = []string{EventLeave, EventSubstitution, EventShiftSwap, EventDateSwap, EventOvertime}

// LineBreak is the in-cell line break marker carried inside status and note
// text. Exports replace it with a single space.
const LineBreak = "<br>"

// Month identifies one displayed month.
type Month struct {
	Year  int
	Month int
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return time.Date(m.Year, time.Month(m.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Prefix returns the "YYYY-MM" prefix shared by all dates in the month.
func (m Month) Prefix() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// DateOf returns the ISO date string for the given day of the month.
func (m Month) DateOf(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", m.Year, m.Month, day)
}

// Weekday returns the day of week for the given day of the month.
func (m Month) Weekday(day int) time.Weekday {
	return time.Date(m.Year, time.Month(m.Month), day, 0, 0, 0, 0, time.UTC).Weekday()
}

// Contains reports whether the ISO date string falls inside the month.
func (m Month) Contains(date string) bool {
	return strings.HasPrefix(date, m.Prefix()+"-")
}

// DayOf parses the day-of-month out of an ISO date string, requiring the
// date to fall inside the month. Returns (0, false) otherwise.
func (m Month) DayOf(date string) (int, bool) {
	if !m.Contains(date) {
		return 0, false
	}
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return 0, false
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil || d < 1 || d > m.Days() {
		return 0, false
	}
	return d, true
}

// Prev returns the previous month.
func (m Month) Prev() Month {
	if m.Month == 1 {
		return Month{Year: m.Year - 1, Month: 12}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Next returns the following month.
func (m Month) Next() Month {
	if m.Month == 12 {
		return Month{Year: m.Year + 1, Month: 1}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

var weekdayShort = []string{"日", "一", "二", "三", "四", "五", "六"}

// WeekdayShort returns the single-character weekday label for a day of the
// month, e.g. "一" for Monday.
func (m Month) WeekdayShort(day int) string {
	return weekdayShort[int(m.Weekday(day))]
}

// DefaultStatus computes the default status for a weekday: Sunday is the
// weekly off day, Saturday a rest day, everything else a workday.
func DefaultStatus(dow time.Weekday) string {
	switch dow {
	case time.Sunday:
		return StatusWeeklyOff
	case time.Saturday:
		return StatusRest
	default:
		return StatusWorkday
	}
}

// DefaultStatusFor computes the default status for an ISO date string.
func DefaultStatusFor(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return StatusWorkday
	}
	return DefaultStatus(t.Weekday())
}

// ShortDate trims an ISO date to its "MM-DD" tail for compact annotations.
func ShortDate(date string) string {
	if len(date) >= 10 {
		return date[5:]
	}
	return ""
}

// Nickname shortens a display name to its last two runes. Names of two or
// fewer runes are returned unchanged.
func Nickname(name string) string {
	r := []rune(name)
	if len(r) > 2 {
		return string(r[len(r)-2:])
	}
	return name
}
