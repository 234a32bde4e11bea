package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/model"
)

// TeamRepository 班组仓储接口（只读镜像）
type TeamRepository interface {
	GetByID(ctx context.Context, teamID string) (*model.Team, error)
	ListByOrganization(ctx context.Context, orgID string) ([]*model.Team, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository 创建班组仓储
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) GetByID(ctx context.Context, teamID string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).Where("team_id = ?", teamID).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) ListByOrganization(ctx context.Context, orgID string) ([]*model.Team, error) {
	var teams []*model.Team
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}
