package schedule

// Mode is the editor's top-level state. Base edit and quick edit are
// mutually exclusive; entering one cancels the other.
type Mode int

const (
	ModeIdle Mode = iota
	ModeBase
	ModeQuick
)

// CellRef identifies one grid cell during a quick-edit selection.
type CellRef struct {
	Day      int    `json:"day"`
	MemberID string `json:"memberId"`
	Date     string `json:"date"`
}

// Selection is the ephemeral multi-step quick-edit state: step 0 is idle,
// step 1 awaits the source cell, step 2 awaits the target cell.
type Selection struct {
	Step   int
	Source *CellRef
	Target *CellRef
}

// statusCycle is the order base-edit clicks rotate a cell through.
var statusCycle = []string{StatusWorkday, StatusRest, StatusWeeklyOff}

// Editor drives the two interactive edit flows over a month's grid: the
// direct cycle-through-status base edit and the guided quick-entry of
// events. It holds no persistence; pending base-edit overrides are read
// back via Pending and diffed against history by DiffOverrides.
type Editor struct {
	month     Month
	mode      Mode
	action    string // quick-edit event type
	external  bool   // external-substitute variant of EventSubstitution
	selection Selection
	pending   map[string]string // OverrideKey -> status
	draft     Event
}

// NewEditor creates an idle editor bound to a month.
func NewEditor(m Month) *Editor {
	return &Editor{month: m, pending: map[string]string{}}
}

func (ed *Editor) Month() Month   { return ed.month }
func (ed *Editor) Mode() Mode     { return ed.mode }
func (ed *Editor) Action() string { return ed.action }
func (ed *Editor) Draft() Event   { return ed.draft }

// Selection returns a copy of the current quick-edit selection.
func (ed *Editor) Selection() Selection { return ed.selection }

// SetMonth switches the displayed month. Pending base edits are keyed by
// dates of the old month and would silently resurrect when switching back,
// so they are dropped here along with any in-flight selection.
func (ed *Editor) SetMonth(m Month) {
	ed.month = m
	ed.Cancel()
	ed.pending = map[string]string{}
}

// StartBaseEdit enters the cycle-through-status mode, cancelling any
// quick-edit flow in progress.
func (ed *Editor) StartBaseEdit() {
	ed.resetQuick()
	ed.mode = ModeBase
}

// StartQuickEdit enters a quick-edit flow for the given event type. For
// substitutions use StartInternalSubstitute or StartExternalSubstitute.
func (ed *Editor) StartQuickEdit(action string) {
	ed.startQuick(action, false)
}

// StartInternalSubstitute begins the two-step internal substitution flow.
func (ed *Editor) StartInternalSubstitute() {
	ed.startQuick(EventSubstitution, false)
}

// StartExternalSubstitute begins the single-step external substitution
// flow; the substitute's name is captured on the form, not the grid.
func (ed *Editor) StartExternalSubstitute() {
	ed.startQuick(EventSubstitution, true)
}

func (ed *Editor) startQuick(action string, external bool) {
	ed.resetQuick()
	ed.mode = ModeQuick
	ed.action = action
	ed.external = external
	ed.draft = Event{EventType: action, IsExternalSubstitute: external}
	ed.selection = Selection{Step: 1}
}

// Cancel aborts any edit flow and returns to idle. Pending base-edit
// overrides survive; use Discard to drop them.
func (ed *Editor) Cancel() {
	ed.resetQuick()
	ed.mode = ModeIdle
}

func (ed *Editor) resetQuick() {
	ed.mode = ModeIdle
	ed.action = ""
	ed.external = false
	ed.selection = Selection{}
	ed.draft = Event{}
}

// Discard drops every pending base-edit override and leaves base mode.
func (ed *Editor) Discard() {
	ed.pending = map[string]string{}
	if ed.mode == ModeBase {
		ed.mode = ModeIdle
	}
}

// Pending returns a copy of the unsaved base-edit overrides.
func (ed *Editor) Pending() map[string]string {
	out := make(map[string]string, len(ed.pending))
	for k, v := range ed.pending {
		out[k] = v
	}
	return out
}

// HasChanges reports whether any base edit is awaiting save.
func (ed *Editor) HasChanges() bool { return len(ed.pending) > 0 }

// ClearPending is called after a confirmed save; until then the edits are
// kept so a failed save can be retried.
func (ed *Editor) ClearPending() {
	ed.pending = map[string]string{}
	if ed.mode == ModeBase {
		ed.mode = ModeIdle
	}
}

// ClickResult is the outcome of a grid click in an edit mode.
type ClickResult struct {
	// FormOpen signals the caller to present the event form prefilled
	// with Draft.
	FormOpen bool
	Draft    Event
}

// Click handles a click on (day, memberID). In base mode it cycles the
// cell's status and records a pending override. In quick mode it advances
// the selection if the cell is eligible; clicks on ineligible cells are
// ignored. base is the current resolved base schedule (pending edits
// included), grid the current projected grid.
func (ed *Editor) Click(day int, memberID string, base Base, grid Grid) ClickResult {
	switch ed.mode {
	case ModeBase:
		date := ed.month.DateOf(day)
		current := StatusWorkday
		if p := ed.pending[OverrideKey(date, memberID)]; p != "" {
			current = p
		} else if row, ok := base[day]; ok && row[memberID] != "" {
			current = row[memberID]
		}
		next := statusCycle[0]
		for i, s := range statusCycle {
			if s == current {
				next = statusCycle[(i+1)%len(statusCycle)]
				break
			}
		}
		ed.pending[OverrideKey(date, memberID)] = next
		return ClickResult{}

	case ModeQuick:
		if !ed.Selectable(day, memberID, grid) {
			return ClickResult{}
		}
		date := ed.month.DateOf(day)
		ref := &CellRef{Day: day, MemberID: memberID, Date: date}
		switch ed.selection.Step {
		case 1:
			ed.selection.Source = ref
			ed.draft.Date = date
			ed.draft.MemberID = memberID
			switch {
			case ed.action == EventOvertime:
				ed.draft.Hours = 1
				return ClickResult{FormOpen: true, Draft: ed.draft}
			case ed.action == EventLeave:
				ed.draft.Reason = LeaveTypes[0].Name
				return ClickResult{FormOpen: true, Draft: ed.draft}
			case ed.action == EventSubstitution && ed.external:
				return ClickResult{FormOpen: true, Draft: ed.draft}
			default:
				ed.selection.Step = 2
				return ClickResult{}
			}
		case 2:
			ed.selection.Target = ref
			switch ed.action {
			case EventSubstitution:
				ed.draft.RelatedMemberID = memberID
				ed.draft.IsExternalSubstitute = false
			case EventDateSwap:
				ed.draft.RelatedMemberID = ed.selection.Source.MemberID
				ed.draft.RelatedDate = date
			case EventShiftSwap:
				ed.draft.RelatedMemberID = memberID
				ed.draft.RelatedDate = date
			}
			return ClickResult{FormOpen: true, Draft: ed.draft}
		}
	}
	return ClickResult{}
}

// Selectable reports whether a cell is currently eligible for selection in
// the active quick-edit step.
func (ed *Editor) Selectable(day int, memberID string, grid Grid) bool {
	if ed.mode != ModeQuick {
		return false
	}
	if ed.action == EventOvertime {
		return true
	}
	cell := grid.Cell(day, memberID)
	if cell == nil {
		return false
	}

	switch ed.selection.Step {
	case 1:
		return cell.Status == StatusWorkday
	case 2:
		src := ed.selection.Source
		if src == nil {
			return false
		}
		if day == src.Day && memberID == src.MemberID {
			return false
		}
		off := isOff(cell.Status)
		switch ed.action {
		case EventSubstitution:
			return day == src.Day && off
		case EventDateSwap:
			return memberID == src.MemberID && off
		case EventShiftSwap:
			if memberID == src.MemberID || cell.Status != StatusWorkday {
				return false
			}
			// The swap only makes sense if each party is off on the
			// other's working day.
			initiator := grid.Cell(day, src.MemberID)
			if initiator == nil || !isOff(initiator.Status) {
				return false
			}
			counterpart := grid.Cell(src.Day, memberID)
			return counterpart != nil && isOff(counterpart.Status)
		}
	}
	return false
}

func isOff(status string) bool {
	return status == StatusRest || status == StatusWeeklyOff
}

// Prompt returns the instruction text for the current quick-edit step.
func (ed *Editor) Prompt() string {
	if ed.mode != ModeQuick {
		return ""
	}
	if ed.action == EventOvertime {
		return "請選擇要記錄加班的儲存格"
	}
	if ed.action == EventSubstitution && ed.external {
		return "請選擇要由「外部人員代班」的儲存格"
	}
	actionText := map[string]string{
		EventLeave:        "請假",
		EventSubstitution: "被代班",
		EventShiftSwap:    "調班",
		EventDateSwap:     "調假",
	}
	targetText := map[string]string{
		EventSubstitution: "來支援的同事",
		EventShiftSwap:    "要交換的對方上班日",
		EventDateSwap:     "要交換的休息日",
	}
	switch ed.selection.Step {
	case 1:
		return "請選擇要「" + actionText[ed.action] + "」的儲存格"
	case 2:
		return "請選擇「" + targetText[ed.action] + "」"
	}
	return ""
}
