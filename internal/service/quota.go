package service

import (
	"context"
	"fmt"

	"shift-roster/internal/model"
	"shift-roster/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuotaService struct{ db *gorm.DB }

func NewQuotaService(db *gorm.DB) *QuotaService { return &QuotaService{db: db} }

func (s *QuotaService) ForYear(ctx context.Context, year int) ([]model.Quota, error) {
	var quotas []model.Quota
	if err := s.db.WithContext(ctx).Where("year = ?", year).Find(&quotas).Error; err != nil {
		return nil, fmt.Errorf("query quotas: %w", err)
	}
	return quotas, nil
}

// SaveBatch upserts quota rows in one transaction: rows with an id update
// in place, the rest insert.
func (s *QuotaService) SaveBatch(ctx context.Context, quotas []model.Quota) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, q := range quotas {
			if q.ID == "" {
				q.ID = uuid.NewString()
				if err := tx.Create(&q).Error; err != nil {
					return err
				}
				continue
			}
			err := tx.Model(&model.Quota{ID: q.ID}).Updates(map[string]interface{}{
				"member_id":          q.MemberID,
				"year":               q.Year,
				"leave_type":         q.LeaveType,
				"total_days":         q.TotalDays,
				"initial_used_days":  q.InitialUsedDays,
				"total_hours":        q.TotalHours,
				"initial_used_hours": q.InitialUsedHours,
			}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save quota batch: %w", err)
	}
	return nil
}

// Usage is one member's consumption picture for a year, derived from the
// year's events on top of the stored starting balances.
type Usage struct {
	MemberID        string             `json:"memberId"`
	Year            int                `json:"year"`
	ByLeaveType     map[string]float64 `json:"byLeaveType"`
	OvertimeHours   float64            `json:"overtimeHours"`
	CompUsedHours   float64            `json:"compUsedHours"`
	OvertimeBalance string             `json:"overtimeBalance"`
}

// UsageFor computes a member's yearly usage from that year's events.
func (s *QuotaService) UsageFor(ctx context.Context, year int, memberID string) (*Usage, error) {
	var events []model.Event
	err := s.db.WithContext(ctx).
		Where("member_id = ? AND date >= ? AND date < ?", memberID,
			fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-01-01", year+1)).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("query member events: %w", err)
	}

	pes := Projections(events)
	u := &Usage{MemberID: memberID, Year: year, ByLeaveType: map[string]float64{}}
	for _, lt := range schedule.LeaveTypes {
		u.ByLeaveType[lt.Name] = schedule.UsedForLeave(pes, memberID, lt.Name)
	}
	u.OvertimeHours = schedule.OvertimeHours(pes, memberID)
	u.CompUsedHours = schedule.CompensatoryHours(pes, memberID)
	u.OvertimeBalance = schedule.FormatHours(u.OvertimeHours - u.CompUsedHours)
	return u, nil
}
