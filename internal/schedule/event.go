package schedule

import (
	"errors"
	"strings"
)

// Event is one dated occurrence affecting one or two members on one or two
// dates. Which fields matter depends on EventType; ValidateEvent enforces
// the per-type requirements before anything is persisted.
type Event struct {
	ID          string
	Date        string // ISO "YYYY-MM-DD"
	MemberID    string
	EventType   string
	Reason      string  // leave type, EventLeave only
	Hours       float64 // > 0 for overtime and hour-denominated leave
	Description string  // free text, meaningful for personal leave only

	RelatedMemberID string // counterpart for internal substitution and shift swap
	RelatedDate     string // counterpart date for shift swap and date swap

	IsExternalSubstitute   bool
	ExternalSubstituteName string
}

// LeaveUnit is how a leave type is denominated.
type LeaveUnit string

const (
	UnitHour LeaveUnit = "hour"
	UnitDay  LeaveUnit = "day"
)

// LeaveType describes one configured leave reason.
type LeaveType struct {
	Name           string
	Unit           LeaveUnit
	ConvertToHours bool
}

// LeavePersonal is the leave reason whose free-text description is shown in
// place of the hour annotation.
const LeavePersonal = "事假"

// LeaveTypes lists the configured leave reasons in display order.
var LeaveTypes = []LeaveType{
	{Name: "特休", Unit: UnitHour, ConvertToHours: true},
	{Name: "補休", Unit: UnitHour, ConvertToHours: false},
	{Name: LeavePersonal, Unit: UnitHour, ConvertToHours: true},
	{Name: "病假", Unit: UnitHour, ConvertToHours: true},
	{Name: "喪假", Unit: UnitDay, ConvertToHours: false},
	{Name: "歲時儀祭", Unit: UnitDay, ConvertToHours: false},
}

// LeaveCompensatory is leave paid back out of accrued overtime.
const LeaveCompensatory = "補休"

// LeaveTypeByName looks up a configured leave reason.
func LeaveTypeByName(name string) (LeaveType, bool) {
	for _, lt := range LeaveTypes {
		if lt.Name == name {
			return lt, true
		}
	}
	return LeaveType{}, false
}

// IsHourlyLeave reports whether a leave reason is hour-denominated.
func IsHourlyLeave(reason string) bool {
	lt, ok := LeaveTypeByName(reason)
	return ok && lt.Unit == UnitHour
}

// Validation failures are local and recoverable: the submission is aborted,
// nothing else.
var (
	ErrIncomplete      = errors.New("成員、事件類型和日期為必填項")
	ErrHoursRequired   = errors.New("請輸入有效的時數")
	ErrReasonRequired  = errors.New("請選擇假別")
	ErrExternalName    = errors.New("請輸入外部代班人員的姓名")
	ErrRelatedMember   = errors.New("請選擇內部代班成員")
	ErrSwapCounterpart = errors.New("請選擇交換對象與日期")
	ErrUnknownType     = errors.New("未知的事件類型")
)

// ValidateEvent checks the per-type field requirements. The event is not
// modified; use NormalizeEvent to clear fields that do not apply.
func ValidateEvent(e Event) error {
	if e.EventType == "" || e.MemberID == "" || e.Date == "" {
		return ErrIncomplete
	}
	switch e.EventType {
	case EventOvertime:
		if e.Hours <= 0 {
			return ErrHoursRequired
		}
	case EventLeave:
		if e.Reason == "" {
			return ErrReasonRequired
		}
		if IsHourlyLeave(e.Reason) && e.Hours <= 0 {
			return ErrHoursRequired
		}
	case EventSubstitution:
		if e.IsExternalSubstitute {
			if strings.TrimSpace(e.ExternalSubstituteName) == "" {
				return ErrExternalName
			}
		} else if e.RelatedMemberID == "" {
			return ErrRelatedMember
		}
	case EventShiftSwap:
		if e.RelatedMemberID == "" || e.RelatedDate == "" {
			return ErrSwapCounterpart
		}
	case EventDateSwap:
		if e.RelatedDate == "" {
			return ErrSwapCounterpart
		}
	default:
		return ErrUnknownType
	}
	return nil
}

// NormalizeEvent clears the fields that carry no meaning for the event's
// type, so stored records do not accumulate stale cross-type leftovers.
func NormalizeEvent(e Event) Event {
	switch e.EventType {
	case EventLeave:
		if !IsHourlyLeave(e.Reason) {
			e.Hours = 0
		}
		if e.Reason != LeavePersonal {
			e.Description = ""
		}
		e.RelatedMemberID, e.RelatedDate = "", ""
		e.IsExternalSubstitute, e.ExternalSubstituteName = false, ""
	case EventOvertime:
		e.Reason, e.Description = "", ""
		e.RelatedMemberID, e.RelatedDate = "", ""
		e.IsExternalSubstitute, e.ExternalSubstituteName = false, ""
	case EventSubstitution:
		e.Reason, e.Hours = "", 0
		e.RelatedDate = ""
		if e.IsExternalSubstitute {
			e.RelatedMemberID = ""
			e.ExternalSubstituteName = strings.TrimSpace(e.ExternalSubstituteName)
		} else {
			e.ExternalSubstituteName = ""
		}
	case EventShiftSwap, EventDateSwap:
		e.Reason, e.Hours = "", 0
		e.IsExternalSubstitute, e.ExternalSubstituteName = false, ""
	}
	return e
}

// Touches reports whether the event lights up the given cell when hovered,
// together with every other cell in its highlight group.
func (e Event) Touches(m Month, day int, memberID string) bool {
	d1, _ := m.DayOf(e.Date)
	d2, _ := m.DayOf(e.RelatedDate)
	switch e.EventType {
	case EventOvertime, EventLeave:
		return d1 == day && e.MemberID == memberID
	case EventDateSwap:
		return e.MemberID == memberID && (d1 == day || d2 == day)
	case EventShiftSwap:
		mine := e.MemberID == memberID || e.RelatedMemberID == memberID
		return mine && (d1 == day || d2 == day)
	case EventSubstitution:
		return d1 == day && (e.MemberID == memberID || e.RelatedMemberID == memberID)
	}
	return false
}
