package schedule

import (
	"sort"
	"strconv"
)

// Cell is the derived display state of one (day, member) slot. It is
// recomputed from scratch on every projection and never persisted.
type Cell struct {
	Status      string  `json:"status"`
	ColorStatus string  `json:"colorStatus"`
	Note        string  `json:"note"`
	EventType   string  `json:"eventType,omitempty"`
	Events      []Event `json:"events,omitempty"`
}

// Grid maps day of month to member ID to display cell.
type Grid map[int]map[string]*Cell

// Cell returns the cell at (day, memberID), or nil when the slot does not
// exist in the grid.
func (g Grid) Cell(day int, memberID string) *Cell {
	if row, ok := g[day]; ok {
		return row[memberID]
	}
	return nil
}

// NameFunc resolves a member ID to a display name for annotations.
type NameFunc func(memberID string) string

// legacyLabel is a data-migration leftover still present in stored events;
// it is rewritten to the corrected two-line label at render time only.
const (
	legacyLabel    = "歲時儀祭"
	legacyRewrite  = "歲時" + LineBreak + "祭儀"
	noteSubstitute = "代班"
	noteSupport    = "支援"
)

// Project applies a month's events onto a base schedule and returns the
// final display grid. The base is not mutated. Events are applied in
// ascending date order with a stable sort, so for a shared target cell a
// later date wins, and among equal dates later input order wins. Overtime
// is annotation-only and applied last. Malformed events or events whose
// related side falls outside the grid are skipped silently; projection is
// total and never fails.
func Project(m Month, base Base, events []Event, nameOf NameFunc) Grid {
	grid := make(Grid, len(base))
	for d, row := range base {
		cells := make(map[string]*Cell, len(row))
		for id, status := range row {
			cells[id] = &Cell{Status: status, ColorStatus: status}
		}
		grid[d] = cells
	}

	if nameOf == nil {
		nameOf = func(string) string { return "" }
	}
	nickOf := func(id string) string { return Nickname(nameOf(id)) }

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	var overtime []Event
	for _, e := range sorted {
		if e.EventType == EventOvertime {
			overtime = append(overtime, e)
			continue
		}
		applyEvent(m, grid, e, nickOf)
	}

	for _, e := range overtime {
		if day, ok := m.DayOf(e.Date); ok {
			if c := grid.Cell(day, e.MemberID); c != nil {
				c.Events = append(c.Events, e)
			}
		}
	}

	for _, row := range grid {
		for _, c := range row {
			if c.Status == legacyLabel {
				c.Status = legacyRewrite
			}
		}
	}
	return grid
}

func applyEvent(m Month, grid Grid, e Event, nickOf NameFunc) {
	if e.EventType == "" || e.MemberID == "" || e.Date == "" {
		return
	}

	switch e.EventType {
	case EventLeave:
		day, ok := m.DayOf(e.Date)
		if !ok {
			return
		}
		c := grid.Cell(day, e.MemberID)
		if c == nil {
			return
		}
		label := e.Reason
		if label == "" {
			label = EventLeave
		}
		c.Status, c.ColorStatus = label, label
		c.EventType = e.EventType
		switch {
		case e.Reason == LeavePersonal && e.Description != "":
			c.Note = e.Description
		case e.Hours > 0:
			c.Note = formatHours(e.Hours) + " 小時"
		default:
			c.Note = ""
		}

	case EventSubstitution:
		day, ok := m.DayOf(e.Date)
		if !ok {
			return
		}
		c := grid.Cell(day, e.MemberID)
		if c == nil {
			return
		}
		if e.IsExternalSubstitute {
			c.Status, c.ColorStatus = StatusRest, StatusRest
			c.Note = e.ExternalSubstituteName + noteSubstitute
			c.EventType = e.EventType
			return
		}
		if e.RelatedMemberID == "" {
			return
		}
		c.Status, c.ColorStatus = StatusRest, StatusRest
		c.Note = nickOf(e.RelatedMemberID) + noteSubstitute
		c.EventType = e.EventType
		if sub := grid.Cell(day, e.RelatedMemberID); sub != nil {
			sub.Status, sub.ColorStatus = StatusWorkday, StatusWorkday
			sub.Note = noteSupport + nickOf(e.MemberID)
			sub.EventType = e.EventType
		}

	case EventDateSwap:
		// Both sides must land in the displayed month or nothing moves.
		d1, ok1 := m.DayOf(e.Date)
		d2, ok2 := m.DayOf(e.RelatedDate)
		if !ok1 || !ok2 {
			return
		}
		c1, c2 := grid.Cell(d1, e.MemberID), grid.Cell(d2, e.MemberID)
		if c1 == nil || c2 == nil {
			return
		}
		*c1, *c2 = *c2, *c1
		c1.Note = "調到" + LineBreak + ShortDate(e.RelatedDate)
		c1.EventType = e.EventType
		c2.Note = "調自" + LineBreak + ShortDate(e.Date)
		c2.EventType = e.EventType

	case EventShiftSwap:
		if e.RelatedMemberID == "" || e.RelatedDate == "" {
			return
		}
		// Each side is applied independently; the other may fall in an
		// adjacent month.
		if d1, ok := m.DayOf(e.Date); ok {
			a, b := grid.Cell(d1, e.MemberID), grid.Cell(d1, e.RelatedMemberID)
			if a != nil && b != nil {
				a.Status, a.ColorStatus = StatusRest, StatusRest
				a.Note = "與" + nickOf(e.RelatedMemberID) + "換" + LineBreak + ShortDate(e.RelatedDate)
				a.EventType = e.EventType
				b.Status, b.ColorStatus = StatusWorkday, StatusWorkday
				b.Note = noteSupport + nickOf(e.MemberID)
				b.EventType = e.EventType
			}
		}
		if d2, ok := m.DayOf(e.RelatedDate); ok {
			a, b := grid.Cell(d2, e.MemberID), grid.Cell(d2, e.RelatedMemberID)
			if a != nil && b != nil {
				a.Status, a.ColorStatus = StatusWorkday, StatusWorkday
				a.Note = noteSupport + nickOf(e.RelatedMemberID)
				a.EventType = e.EventType
				b.Status, b.ColorStatus = StatusRest, StatusRest
				b.Note = "與" + nickOf(e.MemberID) + "換" + LineBreak + ShortDate(e.Date)
				b.EventType = e.EventType
			}
		}
	}
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
