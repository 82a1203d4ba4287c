package schedule

import (
	"fmt"
	"math"
	"strings"
)

// HoursPerDay converts between day and hour denominated balances.
const HoursPerDay = 8

// FormatHours renders an hour balance as days and hours, e.g. 10 hours is
// "1 天 2 小時". Zero is "0 小時".
func FormatHours(totalHours float64) string {
	if math.IsNaN(totalHours) {
		return "0 天"
	}
	if totalHours == 0 {
		return "0 小時"
	}
	days := math.Floor(totalHours / HoursPerDay)
	hours := math.Mod(totalHours, HoursPerDay)
	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%s 天", formatHours(days))
	}
	if hours > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s 小時", formatHours(hours))
	}
	if b.Len() == 0 {
		return "0 小時"
	}
	return b.String()
}

// UsedForLeave totals a member's consumption of one leave type across a
// slice of events: event count for day-denominated types, summed hours for
// hour-denominated ones.
func UsedForLeave(events []Event, memberID, leaveType string) float64 {
	lt, ok := LeaveTypeByName(leaveType)
	var total float64
	for _, e := range events {
		if e.MemberID != memberID || e.EventType != EventLeave || e.Reason != leaveType {
			continue
		}
		if ok && lt.Unit == UnitDay {
			total++
		} else {
			total += e.Hours
		}
	}
	return total
}

// OvertimeHours totals a member's overtime hours across a slice of events.
func OvertimeHours(events []Event, memberID string) float64 {
	var total float64
	for _, e := range events {
		if e.MemberID == memberID && e.EventType == EventOvertime {
			total += e.Hours
		}
	}
	return total
}

// CompensatoryHours totals a member's consumed compensatory leave hours,
// the counterpart balance to accrued overtime.
func CompensatoryHours(events []Event, memberID string) float64 {
	return UsedForLeave(events, memberID, LeaveCompensatory)
}

// FilterYear keeps only the events dated inside one calendar year.
func FilterYear(events []Event, year int) []Event {
	prefix := fmt.Sprintf("%04d-", year)
	var out []Event
	for _, e := range events {
		if strings.HasPrefix(e.Date, prefix) {
			out = append(out, e)
		}
	}
	return out
}
