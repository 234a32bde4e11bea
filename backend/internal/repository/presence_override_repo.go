package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/model"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"
)

// PresenceOverrideRepository 人工覆盖仓储接口
// 同一人同一天至多一条覆盖，Upsert 命中唯一索引 uq_override_per_day
type PresenceOverrideRepository interface {
	Upsert(ctx context.Context, override *model.PresenceOverride) error
	Delete(ctx context.Context, personID string, date calendar.Date) error
	GetByPersonAndDate(ctx context.Context, personID string, date calendar.Date) (*model.PresenceOverride, error)
	ListByDateAndOrganizations(ctx context.Context, date calendar.Date, orgIDs []string) ([]*model.PresenceOverride, error)
}

type presenceOverrideRepository struct {
	db *gorm.DB
}

// NewPresenceOverrideRepository 创建人工覆盖仓储
func NewPresenceOverrideRepository(db *gorm.DB) PresenceOverrideRepository {
	return &presenceOverrideRepository{db: db}
}

func (r *presenceOverrideRepository) Upsert(ctx context.Context, override *model.PresenceOverride) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "person_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "start_time", "end_time", "source", "updated_at", "updated_by",
		}),
	}).Create(override).Error
}

func (r *presenceOverrideRepository) Delete(ctx context.Context, personID string, date calendar.Date) error {
	return r.db.WithContext(ctx).
		Where("person_id = ? AND date = ?", personID, date).
		Delete(&model.PresenceOverride{}).Error
}

func (r *presenceOverrideRepository) GetByPersonAndDate(ctx context.Context, personID string, date calendar.Date) (*model.PresenceOverride, error) {
	var override model.PresenceOverride
	err := r.db.WithContext(ctx).
		Where("person_id = ? AND date = ?", personID, date).
		First(&override).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &override, nil
}

func (r *presenceOverrideRepository) ListByDateAndOrganizations(ctx context.Context, date calendar.Date, orgIDs []string) ([]*model.PresenceOverride, error) {
	if len(orgIDs) == 0 {
		return nil, nil
	}
	var overrides []*model.PresenceOverride
	err := r.db.WithContext(ctx).
		Where("organization_id IN ? AND date = ?", orgIDs, date).
		Find(&overrides).Error
	return overrides, err
}
