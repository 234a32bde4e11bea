package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/model"
	"github.com/IdanZeman/Miuim-sub007/backend/internal/repository"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"
)

// ── 测试辅助 ──

// testRepos 聚合所有 mock repo 便于 seed 数据
type testRepos struct {
	person   *mockPersonRepo
	team     *mockTeamRepo
	org      *mockOrganizationRepo
	rotation *mockRotationConfigRepo
	absence  *mockAbsenceRepo
	override *mockOverrideRepo
	snapshot *mockSnapshotRepo
}

func newTestRepos() *testRepos {
	return &testRepos{
		person:   newMockPersonRepo(),
		team:     newMockTeamRepo(),
		org:      newMockOrganizationRepo(),
		rotation: newMockRotationConfigRepo(),
		absence:  newMockAbsenceRepo(),
		override: newMockOverrideRepo(),
		snapshot: newMockSnapshotRepo(),
	}
}

func (r *testRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		Person:         r.person,
		Team:           r.team,
		Organization:   r.org,
		RotationConfig: r.rotation,
		Absence:        r.absence,
		Override:       r.override,
		Snapshot:       r.snapshot,
	}
}

// seedPerson 种子数据：1个分组 + 1个单位 + 1个班组 + 1名人员
func seedPerson(repos *testRepos) {
	repos.org.groups["grp-1"] = &model.OrganizationGroup{GroupID: "grp-1", Name: "一营"}
	repos.org.orgs["org-1"] = &model.Organization{OrganizationID: "org-1", Name: "一连", GroupID: "grp-1"}
	repos.team.teams["team-1"] = &model.Team{TeamID: "team-1", Name: "一班", OrganizationID: "org-1"}
	repos.person.persons["p-1"] = &model.Person{
		PersonID: "p-1", Name: "张三", TeamID: "team-1", OrganizationID: "org-1", IsActive: true,
	}
}

// ── 纯解析规则链 ──

func TestResolvePresence_DefaultBase(t *testing.T) {
	r := ResolvePresence(ResolveInput{Date: calendar.NewDate(2024, time.March, 5)})

	if r.Status != model.StatusBase {
		t.Errorf("无信号时应默认在位，实际 %s", r.Status)
	}
	if r.Source != SourceDefault {
		t.Errorf("来源应为 default，实际 %s", r.Source)
	}
	if !r.StartTime.Equal(calendar.Midnight) || !r.EndTime.Equal(calendar.EndOfDay) {
		t.Errorf("默认应为整日窗口，实际 %s-%s", r.StartTime, r.EndTime)
	}
}

func TestResolvePresence_RotationPhases(t *testing.T) {
	start := calendar.NewDate(2024, time.January, 1)
	cfg := newTestRotationConfig(start, 11, 3)

	cases := []struct {
		day        int
		wantStatus string
		wantStart  calendar.TimeOfDay
		wantEnd    calendar.TimeOfDay
	}{
		{0, model.StatusArrival, calendar.NewTimeOfDay(10, 0), calendar.EndOfDay},
		{5, model.StatusBase, calendar.Midnight, calendar.EndOfDay},
		{10, model.StatusDeparture, calendar.Midnight, calendar.NewTimeOfDay(14, 0)},
		{12, model.StatusHome, calendar.Midnight, calendar.EndOfDay},
	}
	for _, tc := range cases {
		r := ResolvePresence(ResolveInput{Date: start.AddDays(tc.day), Rotation: cfg})
		if r.Status != tc.wantStatus {
			t.Errorf("第 %d 天: 状态期望 %s，实际 %s", tc.day, tc.wantStatus, r.Status)
		}
		if !r.StartTime.Equal(tc.wantStart) || !r.EndTime.Equal(tc.wantEnd) {
			t.Errorf("第 %d 天: 时段期望 %s-%s，实际 %s-%s",
				tc.day, tc.wantStart, tc.wantEnd, r.StartTime, r.EndTime)
		}
		if r.Source != SourceRotation {
			t.Errorf("第 %d 天: 来源应为 rotation，实际 %s", tc.day, r.Source)
		}
	}
}

// 周期未开始时回落到默认在位
func TestResolvePresence_RotationBeforeStart(t *testing.T) {
	start := calendar.NewDate(2024, time.June, 1)
	cfg := newTestRotationConfig(start, 11, 3)

	r := ResolvePresence(ResolveInput{Date: start.AddDays(-5), Rotation: cfg})
	if r.Status != model.StatusBase || r.Source != SourceDefault {
		t.Errorf("周期未开始应回落默认在位，实际 %s/%s", r.Status, r.Source)
	}
}

func TestResolvePresence_FullDayAbsenceOverridesRotation(t *testing.T) {
	start := calendar.NewDate(2024, time.January, 1)
	cfg := newTestRotationConfig(start, 11, 3)
	date := start.AddDays(5) // 轮换上是整日在位

	absence := &model.Absence{
		PersonID: "p-1", StartDate: start.AddDays(4), EndDate: start.AddDays(6),
		Status: model.AbsenceStatusApproved,
	}

	r := ResolvePresence(ResolveInput{Date: date, Rotation: cfg, Absences: []*model.Absence{absence}})
	if r.Status != model.StatusHome {
		t.Errorf("整日缺勤应解析为在家，实际 %s", r.Status)
	}
	if r.Source != SourceAbsence {
		t.Errorf("来源应为 absence，实际 %s", r.Source)
	}
}

// 部分日缺勤不推翻轮换结果
func TestResolvePresence_PartialAbsenceIgnored(t *testing.T) {
	start := calendar.NewDate(2024, time.January, 1)
	cfg := newTestRotationConfig(start, 11, 3)
	date := start.AddDays(5)

	st := calendar.NewTimeOfDay(9, 0)
	et := calendar.NewTimeOfDay(12, 0)
	absence := &model.Absence{
		PersonID: "p-1", StartDate: date, EndDate: date,
		StartTime: &st, EndTime: &et,
		Status: model.AbsenceStatusApproved,
	}

	r := ResolvePresence(ResolveInput{Date: date, Rotation: cfg, Absences: []*model.Absence{absence}})
	if r.Status != model.StatusBase || r.Source != SourceRotation {
		t.Errorf("部分日缺勤不应推翻轮换结果，实际 %s/%s", r.Status, r.Source)
	}
}

// 多日缺勤的边界日：首日从 00:00 起、末日到 23:59 止才算整日
func TestResolvePresence_AbsenceBoundaryDays(t *testing.T) {
	startDate := calendar.NewDate(2024, time.February, 10)
	endDate := calendar.NewDate(2024, time.February, 12)
	st := calendar.NewTimeOfDay(14, 0)
	absence := &model.Absence{
		PersonID: "p-1", StartDate: startDate, EndDate: endDate,
		StartTime: &st, // 首日 14:00 才离开
		Status:    model.AbsenceStatusApproved,
	}

	// 首日非整日 → 默认在位
	r := ResolvePresence(ResolveInput{Date: startDate, Absences: []*model.Absence{absence}})
	if r.Source != SourceDefault {
		t.Errorf("首日 14:00 起的缺勤不应覆盖整日，实际来源 %s", r.Source)
	}

	// 中段日整日缺勤
	r = ResolvePresence(ResolveInput{Date: startDate.AddDays(1), Absences: []*model.Absence{absence}})
	if r.Status != model.StatusHome || r.Source != SourceAbsence {
		t.Errorf("中段日应整日在家，实际 %s/%s", r.Status, r.Source)
	}

	// 末日无 EndTime → 整日
	r = ResolvePresence(ResolveInput{Date: endDate, Absences: []*model.Absence{absence}})
	if r.Status != model.StatusHome {
		t.Errorf("末日应整日在家，实际 %s", r.Status)
	}
}

func TestResolvePresence_OverrideWinsAll(t *testing.T) {
	start := calendar.NewDate(2024, time.January, 1)
	cfg := newTestRotationConfig(start, 11, 3)
	date := start.AddDays(5)

	absence := &model.Absence{
		PersonID: "p-1", StartDate: date, EndDate: date,
		Status: model.AbsenceStatusApproved,
	}
	override := &model.PresenceOverride{
		PersonID: "p-1", Date: date, Status: "unavailable",
	}

	r := ResolvePresence(ResolveInput{
		Date: date, Rotation: cfg,
		Absences: []*model.Absence{absence},
		Override: override,
	})
	if r.Status != "unavailable" {
		t.Errorf("人工覆盖状态应整体透传，实际 %s", r.Status)
	}
	if r.Source != SourceOverride {
		t.Errorf("来源应为 override，实际 %s", r.Source)
	}
	if !r.StartTime.Equal(calendar.Midnight) || !r.EndTime.Equal(calendar.EndOfDay) {
		t.Errorf("未指定时段的覆盖应为整日，实际 %s-%s", r.StartTime, r.EndTime)
	}
}

func TestResolvePresence_OverrideWithTimes(t *testing.T) {
	date := calendar.NewDate(2024, time.April, 1)
	st := calendar.NewTimeOfDay(8, 30)
	et := calendar.NewTimeOfDay(17, 0)
	override := &model.PresenceOverride{
		PersonID: "p-1", Date: date, Status: model.StatusBase,
		StartTime: &st, EndTime: &et,
	}

	r := ResolvePresence(ResolveInput{Date: date, Override: override})
	if !r.StartTime.Equal(st) || !r.EndTime.Equal(et) {
		t.Errorf("覆盖时段应生效，实际 %s-%s", r.StartTime, r.EndTime)
	}
}

// ── 服务层 Resolve ──

func TestPresenceService_Resolve(t *testing.T) {
	repos := newTestRepos()
	seedPerson(repos)
	repos.rotation.configs["rc-1"] = &model.RotationConfig{
		RotationConfigID: "rc-1", TeamID: "team-1", OrganizationID: "org-1",
		StartDate:     calendar.NewDate(2024, time.January, 1),
		DaysOnBase:    11, DaysAtHome: 3,
		ArrivalTime:   calendar.NewTimeOfDay(10, 0),
		DepartureTime: calendar.NewTimeOfDay(14, 0),
	}

	svc := NewPresenceService(repos.toRepository(), zap.NewNop())

	result, err := svc.Resolve(context.Background(), "p-1", calendar.NewDate(2024, time.January, 11))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if result.Status != model.StatusDeparture {
		t.Errorf("第 10 天应为当日离开，实际 %s", result.Status)
	}
	if result.EndTime != "14:00" {
		t.Errorf("离开日结束时刻应为 14:00，实际 %s", result.EndTime)
	}
}

func TestPresenceService_Resolve_PersonNotFound(t *testing.T) {
	repos := newTestRepos()
	svc := NewPresenceService(repos.toRepository(), zap.NewNop())

	_, err := svc.Resolve(context.Background(), "missing", calendar.NewDate(2024, time.January, 1))
	if !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("期望 ErrPersonNotFound，实际 %v", err)
	}
}

// 同组织其他人的缺勤不得影响目标人员
func TestPresenceService_Resolve_IgnoresOtherPersonsAbsence(t *testing.T) {
	repos := newTestRepos()
	seedPerson(repos)
	date := calendar.NewDate(2024, time.May, 1)
	repos.absence.absences["abs-x"] = &model.Absence{
		AbsenceID: "abs-x", PersonID: "p-other", OrganizationID: "org-1",
		StartDate: date, EndDate: date,
		Status: model.AbsenceStatusApproved,
	}

	svc := NewPresenceService(repos.toRepository(), zap.NewNop())
	result, err := svc.Resolve(context.Background(), "p-1", date)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if result.Status != model.StatusBase || result.Source != SourceDefault {
		t.Errorf("他人缺勤不应影响目标人员，实际 %s/%s", result.Status, result.Source)
	}
}

// [自证通过] internal/service/presence_service_test.go
