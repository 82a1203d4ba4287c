package service

import (
	"context"
	"fmt"

	"shift-roster/internal/model"
	"shift-roster/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleService struct{ db *gorm.DB }

func NewScheduleService(db *gorm.DB) *ScheduleService { return &ScheduleService{db: db} }

// OverridesForMonth loads the persisted shift overrides whose dates fall
// inside one month.
func (s *ScheduleService) OverridesForMonth(ctx context.Context, m schedule.Month) ([]model.ShiftOverride, error) {
	var rows []model.ShiftOverride
	err := s.db.WithContext(ctx).
		Where("date >= ? AND date < ?", m.Prefix(), m.Next().Prefix()).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	return rows, nil
}

// Overrides converts stored rows into the pure-core form.
func Overrides(rows []model.ShiftOverride) []schedule.Override {
	out := make([]schedule.Override, len(rows))
	for i, r := range rows {
		out[i] = schedule.Override{ID: r.ID, Date: r.Date, MemberID: r.MemberID, Status: r.ShiftType}
	}
	return out
}

// SaveBatch diffs pending edits against the stored overrides for the month
// and applies the resulting inserts, updates and deletes as one
// transaction. Partial failure rolls everything back.
func (s *ScheduleService) SaveBatch(ctx context.Context, m schedule.Month, pending map[string]string) error {
	stored, err := s.OverridesForMonth(ctx, m)
	if err != nil {
		return err
	}
	originals := make(map[string]schedule.Override, len(stored))
	for _, o := range stored {
		originals[schedule.OverrideKey(o.Date, o.MemberID)] = schedule.Override{
			ID: o.ID, Date: o.Date, MemberID: o.MemberID, Status: o.ShiftType,
		}
	}

	changes := schedule.DiffOverrides(pending, originals)
	if len(changes) == 0 {
		return nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ch := range changes {
			switch ch.Op {
			case schedule.OpDelete:
				if err := tx.Delete(&model.ShiftOverride{ID: ch.ID}).Error; err != nil {
					return err
				}
			case schedule.OpUpdate:
				if err := tx.Model(&model.ShiftOverride{ID: ch.ID}).Update("shift_type", ch.Status).Error; err != nil {
					return err
				}
			case schedule.OpInsert:
				row := model.ShiftOverride{
					ID: uuid.NewString(), Date: ch.Date, MemberID: ch.MemberID, ShiftType: ch.Status,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save schedule batch: %w", err)
	}
	return nil
}

// MonthGrid resolves and projects one month's final display grid.
func (s *ScheduleService) MonthGrid(ctx context.Context, m schedule.Month, members []model.Member, events []model.Event) (schedule.Grid, error) {
	stored, err := s.OverridesForMonth(ctx, m)
	if err != nil {
		return nil, err
	}
	roster := make([]schedule.Member, len(members))
	for i, mb := range members {
		roster[i] = mb.Roster()
	}
	base := schedule.Resolve(m, roster, Overrides(stored), nil)

	monthly := make([]schedule.Event, 0, len(events))
	for _, e := range events {
		pe := e.Projection()
		if m.Contains(pe.Date) || (pe.RelatedDate != "" && m.Contains(pe.RelatedDate)) {
			monthly = append(monthly, pe)
		}
	}
	return schedule.Project(m, base, monthly, NameOf(members)), nil
}
