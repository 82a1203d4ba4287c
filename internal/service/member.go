package service

import (
	"context"
	"fmt"

	"shift-roster/internal/model"
	"shift-roster/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberService struct{ db *gorm.DB }

func NewMemberService(db *gorm.DB) *MemberService { return &MemberService{db: db} }

// List returns the full roster ordered by team, then display order.
func (s *MemberService) List(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	err := s.db.WithContext(ctx).Order("team").Order("display_order").Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	return members, nil
}

// Create adds a member in active status at the end of the roster.
func (s *MemberService) Create(ctx context.Context, m model.Member) (*model.Member, error) {
	m.ID = uuid.NewString()
	m.Status = schedule.MemberActive
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert member: %w", err)
	}
	return &m, nil
}

// Update edits name, title and team. Employment status has its own path so
// a stale edit form cannot flip it accidentally.
func (s *MemberService) Update(ctx context.Context, id string, m model.Member) error {
	err := s.db.WithContext(ctx).Model(&model.Member{ID: id}).Updates(map[string]interface{}{
		"name":  m.Name,
		"title": m.Title,
		"team":  m.Team,
	}).Error
	if err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&model.Member{ID: id}).Error; err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}

func (s *MemberService) SetStatus(ctx context.Context, id, status string) error {
	err := s.db.WithContext(ctx).Model(&model.Member{ID: id}).Update("status", status).Error
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

// SaveOrder persists a new roster ordering in one transaction.
func (s *MemberService) SaveOrder(ctx context.Context, ids []string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&model.Member{ID: id}).Update("display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	return nil
}

// NameOf builds a member-name resolver over a roster snapshot for the
// projection engine's annotations.
func NameOf(members []model.Member) schedule.NameFunc {
	byID := make(map[string]string, len(members))
	for _, m := range members {
		byID[m.ID] = m.Name
	}
	return func(id string) string {
		if name, ok := byID[id]; ok {
			return name
		}
		return "未知"
	}
}
