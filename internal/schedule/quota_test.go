package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0, "0 小時"},
		{2, "2 小時"},
		{8, "1 天"},
		{10, "1 天 2 小時"},
		{16, "2 天"},
		{0.5, "0.5 小時"},
		{9.5, "1 天 1.5 小時"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatHours(c.hours), "hours=%v", c.hours)
	}
}

func TestUsedForLeave(t *testing.T) {
	events := []Event{
		{Date: "2025-01-06", MemberID: "a", EventType: EventLeave, Reason: "特休", Hours: 4},
		{Date: "2025-03-10", MemberID: "a", EventType: EventLeave, Reason: "特休", Hours: 8},
		{Date: "2025-02-01", MemberID: "a", EventType: EventLeave, Reason: "喪假"},
		{Date: "2025-02-02", MemberID: "a", EventType: EventLeave, Reason: "喪假"},
		{Date: "2025-02-03", MemberID: "b", EventType: EventLeave, Reason: "特休", Hours: 2},
		{Date: "2025-02-04", MemberID: "a", EventType: EventOvertime, Hours: 3},
	}

	assert.Equal(t, float64(12), UsedForLeave(events, "a", "特休"), "hourly leave sums hours")
	assert.Equal(t, float64(2), UsedForLeave(events, "a", "喪假"), "daily leave counts events")
	assert.Equal(t, float64(2), UsedForLeave(events, "b", "特休"))
	assert.Zero(t, UsedForLeave(events, "c", "特休"))
}

func TestOvertimeAndCompensatory(t *testing.T) {
	events := []Event{
		{Date: "2025-01-06", MemberID: "a", EventType: EventOvertime, Hours: 2},
		{Date: "2025-01-08", MemberID: "a", EventType: EventOvertime, Hours: 3},
		{Date: "2025-01-10", MemberID: "a", EventType: EventLeave, Reason: LeaveCompensatory, Hours: 4},
		{Date: "2025-01-11", MemberID: "b", EventType: EventOvertime, Hours: 8},
	}

	assert.Equal(t, float64(5), OvertimeHours(events, "a"))
	assert.Equal(t, float64(4), CompensatoryHours(events, "a"))
	assert.Equal(t, float64(8), OvertimeHours(events, "b"))
}

func TestFilterYear(t *testing.T) {
	events := []Event{
		{ID: "1", Date: "2024-12-31"},
		{ID: "2", Date: "2025-01-01"},
		{ID: "3", Date: "2025-12-31"},
	}
	got := FilterYear(events, 2025)
	assert.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
}
