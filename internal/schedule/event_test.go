package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEvent(t *testing.T) {
	base := Event{Date: "2025-01-06", MemberID: "a"}

	cases := []struct {
		name  string
		event Event
		want  error
	}{
		{"missing member", Event{Date: "2025-01-06", EventType: EventLeave}, ErrIncomplete},
		{"unknown type", with(base, func(e *Event) { e.EventType = "出差" }), ErrUnknownType},
		{"overtime no hours", with(base, func(e *Event) { e.EventType = EventOvertime }), ErrHoursRequired},
		{"overtime ok", with(base, func(e *Event) { e.EventType = EventOvertime; e.Hours = 2 }), nil},
		{"leave no reason", with(base, func(e *Event) { e.EventType = EventLeave }), ErrReasonRequired},
		{"hourly leave no hours", with(base, func(e *Event) { e.EventType = EventLeave; e.Reason = "特休" }), ErrHoursRequired},
		{"daily leave no hours ok", with(base, func(e *Event) { e.EventType = EventLeave; e.Reason = "喪假" }), nil},
		{"external sub no name", with(base, func(e *Event) {
			e.EventType = EventSubstitution
			e.IsExternalSubstitute = true
			e.ExternalSubstituteName = "  "
		}), ErrExternalName},
		{"internal sub no member", with(base, func(e *Event) { e.EventType = EventSubstitution }), ErrRelatedMember},
		{"internal sub ok", with(base, func(e *Event) { e.EventType = EventSubstitution; e.RelatedMemberID = "b" }), nil},
		{"shift swap incomplete", with(base, func(e *Event) { e.EventType = EventShiftSwap; e.RelatedMemberID = "b" }), ErrSwapCounterpart},
		{"date swap no related date", with(base, func(e *Event) { e.EventType = EventDateSwap }), ErrSwapCounterpart},
		{"date swap ok", with(base, func(e *Event) { e.EventType = EventDateSwap; e.RelatedDate = "2025-01-11" }), nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateEvent(c.event), c.want)
		})
	}
}

func with(e Event, f func(*Event)) Event {
	f(&e)
	return e
}

func TestNormalizeEvent(t *testing.T) {
	dirty := Event{
		Date: "2025-01-06", MemberID: "a", EventType: EventLeave, Reason: "喪假",
		Hours: 4, Description: "leftover", RelatedMemberID: "b", RelatedDate: "2025-01-11",
		IsExternalSubstitute: true, ExternalSubstituteName: "張哥",
	}
	clean := NormalizeEvent(dirty)
	assert.Zero(t, clean.Hours, "daily leave drops hours")
	assert.Empty(t, clean.Description, "non-personal leave drops the description")
	assert.Empty(t, clean.RelatedMemberID)
	assert.Empty(t, clean.RelatedDate)
	assert.False(t, clean.IsExternalSubstitute)
	assert.Empty(t, clean.ExternalSubstituteName)

	personal := NormalizeEvent(Event{
		Date: "2025-01-06", MemberID: "a", EventType: EventLeave,
		Reason: LeavePersonal, Hours: 2, Description: "看醫生",
	})
	assert.Equal(t, "看醫生", personal.Description)
	assert.Equal(t, float64(2), personal.Hours)

	external := NormalizeEvent(Event{
		Date: "2025-01-06", MemberID: "a", EventType: EventSubstitution,
		IsExternalSubstitute: true, ExternalSubstituteName: " 張哥 ", RelatedMemberID: "b",
	})
	assert.Equal(t, "張哥", external.ExternalSubstituteName)
	assert.Empty(t, external.RelatedMemberID)
}

func TestEventTouches(t *testing.T) {
	swap := Event{
		Date: "2025-01-05", MemberID: "a", EventType: EventShiftSwap,
		RelatedMemberID: "b", RelatedDate: "2025-01-12",
	}
	assert.True(t, swap.Touches(jan2025, 5, "a"))
	assert.True(t, swap.Touches(jan2025, 5, "b"))
	assert.True(t, swap.Touches(jan2025, 12, "a"))
	assert.True(t, swap.Touches(jan2025, 12, "b"))
	assert.False(t, swap.Touches(jan2025, 6, "a"))
	assert.False(t, swap.Touches(jan2025, 5, "c"))

	leave := Event{Date: "2025-01-05", MemberID: "a", EventType: EventLeave}
	assert.True(t, leave.Touches(jan2025, 5, "a"))
	assert.False(t, leave.Touches(jan2025, 5, "b"))
}

func TestHighlightGroup(t *testing.T) {
	events := []Event{
		{Date: "2025-01-05", MemberID: "a", EventType: EventShiftSwap, RelatedMemberID: "b", RelatedDate: "2025-01-12"},
	}
	cells := HighlightGroup(jan2025, events, 5, "a")
	assert.Len(t, cells, 4)
	assert.Equal(t, "cell-highlighted-teal", cells[CellKey(5, "a")])
	assert.Equal(t, "cell-highlighted-teal", cells[CellKey(12, "b")])

	assert.Empty(t, HighlightGroup(jan2025, events, 6, "a"))
}

func TestHighlightGroupCrossMonth(t *testing.T) {
	events := []Event{
		{Date: "2025-01-31", MemberID: "a", EventType: EventDateSwap, RelatedDate: "2025-02-01"},
	}
	cells := HighlightGroup(jan2025, events, 31, "a")
	assert.Len(t, cells, 1, "only the in-month side lights up")
	assert.Equal(t, "cell-highlighted-indigo", cells[CellKey(31, "a")])
}
