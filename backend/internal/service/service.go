package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/IdanZeman/Miuim-sub007/backend/config"
	"github.com/IdanZeman/Miuim-sub007/backend/internal/repository"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"
)

// 通用参数错误
var (
	ErrInvalidDate = errors.New("日期格式无效，应为 YYYY-MM-DD")
	ErrInvalidTime = errors.New("时刻格式无效，应为 HH:MM")
)

// Service 服务聚合
type Service struct {
	Presence       PresenceService
	Snapshot       SnapshotService
	RotationConfig RotationConfigService
	Absence        AbsenceService
	Override       OverrideService
	Organization   OrganizationService
	Export         ExportService
}

// NewService 创建服务聚合
func NewService(repo *repository.Repository, locker RunLocker, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		Presence:       NewPresenceService(repo, logger),
		Snapshot:       NewSnapshotService(repo, locker, &cfg.Snapshot, logger),
		RotationConfig: NewRotationConfigService(repo, logger),
		Absence:        NewAbsenceService(repo, logger),
		Override:       NewOverrideService(repo, logger),
		Organization:   NewOrganizationService(repo, logger),
		Export:         NewExportService(repo, logger),
	}
}

// parseDate 解析 YYYY-MM-DD，失败返回 ErrInvalidDate
func parseDate(s string) (calendar.Date, error) {
	d, err := calendar.ParseDate(s)
	if err != nil {
		return calendar.Date{}, ErrInvalidDate
	}
	return d, nil
}

// parseTimePtr 解析可空的 HH:MM，入参为空指针时返回空指针
func parseTimePtr(s *string) (*calendar.TimeOfDay, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := calendar.ParseTimeOfDay(*s)
	if err != nil {
		return nil, ErrInvalidTime
	}
	return &t, nil
}
