package schedule

import "fmt"

// Highlight classes per event type, keyed into by the grid's hover styling.
var highlightClasses = map[string]string{
	EventLeave:        "cell-highlighted-rose",
	EventSubstitution: "cell-highlighted-sky",
	EventShiftSwap:    "cell-highlighted-teal",
	EventDateSwap:     "cell-highlighted-indigo",
	EventOvertime:     "cell-highlighted-purple",
}

const highlightFallback = "cell-highlighted-blue"

// HighlightClass returns the styling class for an event type.
func HighlightClass(eventType string) string {
	if c, ok := highlightClasses[eventType]; ok {
		return c
	}
	return highlightFallback
}

// CellKey formats the "day-memberID" key highlight maps are indexed by.
func CellKey(day int, memberID string) string {
	return fmt.Sprintf("%d-%s", day, memberID)
}

// HighlightGroup computes the set of cells lit up when (day, memberID) is
// hovered: the first event in input order touching the cell contributes its
// whole cell group. An empty map means no event touches the cell.
func HighlightGroup(m Month, events []Event, day int, memberID string) map[string]string {
	cells := map[string]string{}
	for _, e := range events {
		if !e.Touches(m, day, memberID) {
			continue
		}
		class := HighlightClass(e.EventType)
		d1, ok1 := m.DayOf(e.Date)
		d2, ok2 := m.DayOf(e.RelatedDate)
		switch e.EventType {
		case EventOvertime, EventLeave:
			cells[CellKey(day, memberID)] = class
		case EventSubstitution:
			cells[CellKey(day, e.MemberID)] = class
			if e.RelatedMemberID != "" {
				cells[CellKey(day, e.RelatedMemberID)] = class
			}
		case EventDateSwap:
			if ok1 {
				cells[CellKey(d1, e.MemberID)] = class
			}
			if ok2 {
				cells[CellKey(d2, e.MemberID)] = class
			}
		case EventShiftSwap:
			if ok1 {
				cells[CellKey(d1, e.MemberID)] = class
				if e.RelatedMemberID != "" {
					cells[CellKey(d1, e.RelatedMemberID)] = class
				}
			}
			if ok2 {
				cells[CellKey(d2, e.MemberID)] = class
				if e.RelatedMemberID != "" {
					cells[CellKey(d2, e.RelatedMemberID)] = class
				}
			}
		}
		break
	}
	return cells
}
