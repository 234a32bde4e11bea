package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/model"
)

// RotationConfigRepository 轮换配置仓储接口
type RotationConfigRepository interface {
	Create(ctx context.Context, cfg *model.RotationConfig) error
	Update(ctx context.Context, cfg *model.RotationConfig) error
	Delete(ctx context.Context, configID string) error
	GetByID(ctx context.Context, configID string) (*model.RotationConfig, error)
	GetByTeam(ctx context.Context, teamID string) (*model.RotationConfig, error)
	ListByOrganization(ctx context.Context, orgID string) ([]*model.RotationConfig, error)
	ListByOrganizations(ctx context.Context, orgIDs []string) ([]*model.RotationConfig, error)
}

type rotationConfigRepository struct {
	db *gorm.DB
}

// NewRotationConfigRepository 创建轮换配置仓储
func NewRotationConfigRepository(db *gorm.DB) RotationConfigRepository {
	return &rotationConfigRepository{db: db}
}

func (r *rotationConfigRepository) Create(ctx context.Context, cfg *model.RotationConfig) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

func (r *rotationConfigRepository) Update(ctx context.Context, cfg *model.RotationConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *rotationConfigRepository) Delete(ctx context.Context, configID string) error {
	return r.db.WithContext(ctx).
		Where("rotation_config_id = ?", configID).
		Delete(&model.RotationConfig{}).Error
}

func (r *rotationConfigRepository) GetByID(ctx context.Context, configID string) (*model.RotationConfig, error) {
	var cfg model.RotationConfig
	err := r.db.WithContext(ctx).Where("rotation_config_id = ?", configID).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *rotationConfigRepository) GetByTeam(ctx context.Context, teamID string) (*model.RotationConfig, error) {
	var cfg model.RotationConfig
	err := r.db.WithContext(ctx).Where("team_id = ?", teamID).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *rotationConfigRepository) ListByOrganization(ctx context.Context, orgID string) ([]*model.RotationConfig, error) {
	var cfgs []*model.RotationConfig
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Find(&cfgs).Error
	return cfgs, err
}

func (r *rotationConfigRepository) ListByOrganizations(ctx context.Context, orgIDs []string) ([]*model.RotationConfig, error) {
	if len(orgIDs) == 0 {
		return nil, nil
	}
	var cfgs []*model.RotationConfig
	err := r.db.WithContext(ctx).
		Where("organization_id IN ?", orgIDs).
		Find(&cfgs).Error
	return cfgs, err
}
