package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/model"
	"github.com/IdanZeman/Miuim-sub007/backend/internal/repository"
)

var (
	ErrGroupNotFound = errors.New("营级分组不存在")
)

// OrganizationService 单位与营级分组服务接口
type OrganizationService interface {
	ListGroupsWithReportTime(ctx context.Context) ([]*model.OrganizationGroup, error)
	GetGroup(ctx context.Context, groupID string) (*model.OrganizationGroup, error)
	// UpdateGroupReportTime 设置分组晨报时刻；reportTime 为空时清除配置
	UpdateGroupReportTime(ctx context.Context, groupID string, reportTime *string, actorID string) (*model.OrganizationGroup, error)
	ListByGroup(ctx context.Context, groupID string) ([]*model.Organization, error)
	ListPersons(ctx context.Context, orgID string) ([]*model.Person, error)
	ListTeams(ctx context.Context, orgID string) ([]*model.Team, error)
}

type organizationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewOrganizationService 创建单位服务
func NewOrganizationService(repo *repository.Repository, logger *zap.Logger) OrganizationService {
	return &organizationService{repo: repo, logger: logger}
}

func (s *organizationService) ListGroupsWithReportTime(ctx context.Context) ([]*model.OrganizationGroup, error) {
	return s.repo.Organization.ListGroupsWithReportTime(ctx)
}

func (s *organizationService) GetGroup(ctx context.Context, groupID string) (*model.OrganizationGroup, error) {
	group, err := s.repo.Organization.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

func (s *organizationService) UpdateGroupReportTime(ctx context.Context, groupID string, reportTime *string, actorID string) (*model.OrganizationGroup, error) {
	group, err := s.repo.Organization.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	t, err := parseTimePtr(reportTime)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Organization.UpdateGroupReportTime(ctx, groupID, t); err != nil {
		return nil, err
	}
	group.MorningReportTime = t

	if t == nil {
		s.logger.Info("清除分组晨报时刻", zap.String("group_id", groupID))
	} else {
		s.logger.Info("设置分组晨报时刻",
			zap.String("group_id", groupID),
			zap.String("report_time", t.String()),
		)
	}
	return group, nil
}

func (s *organizationService) ListByGroup(ctx context.Context, groupID string) ([]*model.Organization, error) {
	return s.repo.Organization.ListByGroup(ctx, groupID)
}

func (s *organizationService) ListPersons(ctx context.Context, orgID string) ([]*model.Person, error) {
	return s.repo.Person.ListActiveByOrganization(ctx, orgID)
}

func (s *organizationService) ListTeams(ctx context.Context, orgID string) ([]*model.Team, error) {
	return s.repo.Team.ListByOrganization(ctx, orgID)
}
