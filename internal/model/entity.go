package model

import "time"

// User is a login account for the service itself, separate from the roster.
type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Member is one roster entry. IDs are uuid strings so historical events
// keep resolving after renames.
type Member struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Team         string `gorm:"index" json:"team"`
	Status       string `gorm:"default:在職" json:"status"`
	DisplayOrder int    `json:"displayOrder"`
}

// ShiftOverride is a persisted exception to the weekday default status,
// unique per (date, member). Absence of a row means the default applies.
type ShiftOverride struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Date      string `gorm:"size:10;uniqueIndex:uk_date_member" json:"date"`
	MemberID  string `gorm:"size:36;uniqueIndex:uk_date_member" json:"memberId"`
	ShiftType string `json:"shiftType"`
}

// Event is a dated occurrence modifying the displayed schedule beyond
// overrides. Hours is a pointer so rows only carry it when the event type
// uses it.
type Event struct {
	ID                     string    `gorm:"primaryKey;size:36" json:"id"`
	Date                   string    `gorm:"size:10;index" json:"date"`
	MemberID               string    `gorm:"size:36;index" json:"memberId"`
	EventType              string    `gorm:"size:16" json:"eventType"`
	Reason                 string    `gorm:"size:32" json:"reason,omitempty"`
	Hours                  *float64  `json:"hours,omitempty"`
	Description            string    `json:"description,omitempty"`
	RelatedMemberID        string    `gorm:"size:36" json:"relatedMemberId,omitempty"`
	RelatedDate            string    `gorm:"size:10" json:"relatedDate,omitempty"`
	IsExternalSubstitute   bool      `json:"isExternalSubstitute"`
	ExternalSubstituteName string    `json:"externalSubstituteName,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
}

// Quota is a per-member, per-year, per-leave-type allowance.
type Quota struct {
	ID               string  `gorm:"primaryKey;size:36" json:"id"`
	MemberID         string  `gorm:"size:36;uniqueIndex:uk_member_year_type" json:"memberId"`
	Year             int     `gorm:"uniqueIndex:uk_member_year_type" json:"year"`
	LeaveType        string  `gorm:"size:32;uniqueIndex:uk_member_year_type" json:"leaveType"`
	TotalDays        float64 `json:"totalDays"`
	InitialUsedDays  float64 `json:"initialUsedDays"`
	TotalHours       float64 `json:"totalHours"`
	InitialUsedHours float64 `json:"initialUsedHours"`
}

func (User) TableName() string          { return "users" }
func (Member) TableName() string        { return "members" }
func (ShiftOverride) TableName() string { return "schedules" }
func (Event) TableName() string         { return "events" }
func (Quota) TableName() string         { return "quotas" }
