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

var (
	ErrOverrideNotFound = errors.New("人工覆盖不存在")
)

// OverrideService 人工覆盖服务接口
type OverrideService interface {
	Upsert(ctx context.Context, req *dto.UpsertOverrideRequest, actorID string) (*model.PresenceOverride, error)
	Get(ctx context.Context, personID string, date calendar.Date) (*model.PresenceOverride, error)
	Delete(ctx context.Context, personID string, date calendar.Date) error
}

type overrideService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewOverrideService 创建人工覆盖服务
func NewOverrideService(repo *repository.Repository, logger *zap.Logger) OverrideService {
	return &overrideService{repo: repo, logger: logger}
}

func (s *overrideService) Upsert(ctx context.Context, req *dto.UpsertOverrideRequest, actorID string) (*model.PresenceOverride, error) {
	person, err := s.repo.Person.GetByID(ctx, req.PersonID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	startTime, err := parseTimePtr(req.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := parseTimePtr(req.EndTime)
	if err != nil {
		return nil, err
	}

	override := &model.PresenceOverride{
		PersonID:       req.PersonID,
		OrganizationID: req.OrganizationID,
		Date:           date,
		Status:         req.Status,
		StartTime:      startTime,
		EndTime:        endTime,
		Source:         "manual",
	}
	override.CreatedBy = &actorID
	override.UpdatedBy = &actorID

	if err := s.repo.Override.Upsert(ctx, override); err != nil {
		return nil, err
	}

	s.logger.Info("设置人工覆盖",
		zap.String("person_id", req.PersonID),
		zap.String("date", date.String()),
		zap.String("status", req.Status),
	)
	return override, nil
}

func (s *overrideService) Get(ctx context.Context, personID string, date calendar.Date) (*model.PresenceOverride, error) {
	override, err := s.repo.Override.GetByPersonAndDate(ctx, personID, date)
	if err != nil {
		return nil, err
	}
	if override == nil {
		return nil, ErrOverrideNotFound
	}
	return override, nil
}

func (s *overrideService) Delete(ctx context.Context, personID string, date calendar.Date) error {
	override, err := s.repo.Override.GetByPersonAndDate(ctx, personID, date)
	if err != nil {
		return err
	}
	if override == nil {
		return ErrOverrideNotFound
	}
	return s.repo.Override.Delete(ctx, personID, date)
}
