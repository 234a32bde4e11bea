package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/model"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"
)

// OrganizationRepository 单位与营级分组仓储接口
// 单位结构为只读镜像；分组晨报时刻由本服务维护
type OrganizationRepository interface {
	GetByID(ctx context.Context, orgID string) (*model.Organization, error)
	ListByGroup(ctx context.Context, groupID string) ([]*model.Organization, error)
	GetGroupByID(ctx context.Context, groupID string) (*model.OrganizationGroup, error)
	ListGroupsWithReportTime(ctx context.Context) ([]*model.OrganizationGroup, error)
	UpdateGroupReportTime(ctx context.Context, groupID string, reportTime *calendar.TimeOfDay) error
}

type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository 创建单位仓储
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) GetByID(ctx context.Context, orgID string) (*model.Organization, error) {
	var org model.Organization
	err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) ListByGroup(ctx context.Context, groupID string) ([]*model.Organization, error) {
	var orgs []*model.Organization
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Find(&orgs).Error
	return orgs, err
}

func (r *organizationRepository) GetGroupByID(ctx context.Context, groupID string) (*model.OrganizationGroup, error) {
	var group model.OrganizationGroup
	err := r.db.WithContext(ctx).Where("group_id = ?", groupID).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// ListGroupsWithReportTime 列出所有已配置晨报时刻的分组
func (r *organizationRepository) ListGroupsWithReportTime(ctx context.Context) ([]*model.OrganizationGroup, error) {
	var groups []*model.OrganizationGroup
	err := r.db.WithContext(ctx).
		Where("morning_report_time IS NOT NULL").
		Find(&groups).Error
	return groups, err
}

func (r *organizationRepository) UpdateGroupReportTime(ctx context.Context, groupID string, reportTime *calendar.TimeOfDay) error {
	return r.db.WithContext(ctx).
		Model(&model.OrganizationGroup{}).
		Where("group_id = ?", groupID).
		Update("morning_report_time", reportTime).Error
}
