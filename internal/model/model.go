package model

import "shift-roster/internal/schedule"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// EventPayload is the create/update body for events.
type EventPayload struct {
	Date                   string   `json:"date" binding:"required"`
	MemberID               string   `json:"memberId" binding:"required"`
	EventType              string   `json:"eventType" binding:"required"`
	Reason                 string   `json:"reason"`
	Hours                  *float64 `json:"hours"`
	Description            string   `json:"description"`
	RelatedMemberID        string   `json:"relatedMemberId"`
	RelatedDate            string   `json:"relatedDate"`
	IsExternalSubstitute   bool     `json:"isExternalSubstitute"`
	ExternalSubstituteName string   `json:"externalSubstituteName"`
}

// BatchScheduleRequest carries pending base edits keyed by "date_memberId".
type BatchScheduleRequest struct {
	Changes map[string]string `json:"changes" binding:"required"`
}

// SelectableRequest replays a quick-edit selection state so the server can
// answer which cells are currently eligible.
type SelectableRequest struct {
	Action     string            `json:"action" binding:"required"`
	IsExternal bool              `json:"isExternal"`
	Source     *schedule.CellRef `json:"source"`
}

// Projection converts a stored event into its pure-core form.
func (e Event) Projection() schedule.Event {
	var hours float64
	if e.Hours != nil {
		hours = *e.Hours
	}
	return schedule.Event{
		ID:                     e.ID,
		Date:                   e.Date,
		MemberID:               e.MemberID,
		EventType:              e.EventType,
		Reason:                 e.Reason,
		Hours:                  hours,
		Description:            e.Description,
		RelatedMemberID:        e.RelatedMemberID,
		RelatedDate:            e.RelatedDate,
		IsExternalSubstitute:   e.IsExternalSubstitute,
		ExternalSubstituteName: e.ExternalSubstituteName,
	}
}

// Roster converts a stored member into its pure-core form.
func (m Member) Roster() schedule.Member {
	return schedule.Member{ID: m.ID, Name: m.Name, Title: m.Title, Team: m.Team, Status: m.Status}
}

// FromPayload builds a storable event from a request payload. The caller
// validates via the schedule package before persisting.
func FromPayload(p EventPayload) Event {
	return Event{
		Date:                   p.Date,
		MemberID:               p.MemberID,
		EventType:              p.EventType,
		Reason:                 p.Reason,
		Hours:                  p.Hours,
		Description:            p.Description,
		RelatedMemberID:        p.RelatedMemberID,
		RelatedDate:            p.RelatedDate,
		IsExternalSubstitute:   p.IsExternalSubstitute,
		ExternalSubstituteName: p.ExternalSubstituteName,
	}
}
