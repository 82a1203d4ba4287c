package service

import (
	"context"
	"fmt"

	"shift-roster/internal/model"
	"shift-roster/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventService struct{ db *gorm.DB }

func NewEventService(db *gorm.DB) *EventService { return &EventService{db: db} }

// List returns events dated on or after since (all events when empty),
// newest first.
func (s *EventService) List(ctx context.Context, since string) ([]model.Event, error) {
	q := s.db.WithContext(ctx).Order("date desc")
	if since != "" {
		q = q.Where("date >= ?", since)
	}
	var events []model.Event
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return events, nil
}

// Create validates, normalizes and stores a new event.
func (s *EventService) Create(ctx context.Context, p model.EventPayload) (*model.Event, error) {
	e, err := prepare(p)
	if err != nil {
		return nil, err
	}
	e.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return &e, nil
}

// Update validates, normalizes and replaces an existing event's fields.
func (s *EventService) Update(ctx context.Context, id string, p model.EventPayload) error {
	e, err := prepare(p)
	if err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Model(&model.Event{ID: id}).Select(
		"date", "member_id", "event_type", "reason", "hours", "description",
		"related_member_id", "related_date", "is_external_substitute", "external_substitute_name",
	).Updates(&e)
	if res.Error != nil {
		return fmt.Errorf("update event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&model.Event{ID: id}).Error; err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// prepare runs the per-type validation and normalization shared by create
// and update.
func prepare(p model.EventPayload) (model.Event, error) {
	e := model.FromPayload(p)
	if err := schedule.ValidateEvent(e.Projection()); err != nil {
		return model.Event{}, err
	}
	n := schedule.NormalizeEvent(e.Projection())
	e.Reason = n.Reason
	e.Description = n.Description
	e.RelatedMemberID = n.RelatedMemberID
	e.RelatedDate = n.RelatedDate
	e.IsExternalSubstitute = n.IsExternalSubstitute
	e.ExternalSubstituteName = n.ExternalSubstituteName
	if n.Hours > 0 {
		h := n.Hours
		e.Hours = &h
	} else {
		e.Hours = nil
	}
	return e, nil
}

// Projections converts stored events into the pure-core form.
func Projections(events []model.Event) []schedule.Event {
	out := make([]schedule.Event, len(events))
	for i, e := range events {
		out[i] = e.Projection()
	}
	return out
}

// Details renders the one-line summary shown in event lists.
func Details(e model.Event, nameOf schedule.NameFunc) string {
	hours := ""
	if e.Hours != nil && *e.Hours > 0 {
		hours = fmt.Sprintf("（%v 小時）", *e.Hours)
	}
	switch e.EventType {
	case schedule.EventLeave:
		if e.Reason == schedule.LeavePersonal && e.Description != "" {
			return fmt.Sprintf("事由：%s%s", e.Description, hours)
		}
		if lt, ok := schedule.LeaveTypeByName(e.Reason); ok && lt.Unit == schedule.UnitDay {
			return fmt.Sprintf("假別：%s", e.Reason)
		}
		return fmt.Sprintf("假別：%s%s", e.Reason, hours)
	case schedule.EventOvertime:
		if e.Hours != nil {
			return fmt.Sprintf("時數：%v 小時", *e.Hours)
		}
		return "時數：0 小時"
	case schedule.EventSubstitution:
		if e.ExternalSubstituteName != "" {
			return fmt.Sprintf("由 %s 代班", e.ExternalSubstituteName)
		}
		return fmt.Sprintf("由 %s 代班", nameOf(e.RelatedMemberID))
	case schedule.EventShiftSwap:
		return fmt.Sprintf("與 %s 在 %s 換班", nameOf(e.RelatedMemberID), e.RelatedDate)
	case schedule.EventDateSwap:
		return fmt.Sprintf("與 %s 對調", e.RelatedDate)
	}
	return ""
}
