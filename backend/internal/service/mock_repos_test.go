package service

import (
	"context"
	"fmt"
	"time"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/model"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"
)

// ── Mock PersonRepository ──

type mockPersonRepo struct {
	persons map[string]*model.Person
}

func newMockPersonRepo() *mockPersonRepo {
	return &mockPersonRepo{persons: make(map[string]*model.Person)}
}

func (m *mockPersonRepo) GetByID(_ context.Context, id string) (*model.Person, error) {
	return m.persons[id], nil
}

func (m *mockPersonRepo) ListActiveByOrganization(_ context.Context, orgID string) ([]*model.Person, error) {
	return m.ListActiveByOrganizations(context.Background(), []string{orgID})
}

func (m *mockPersonRepo) ListActiveByOrganizations(_ context.Context, orgIDs []string) ([]*model.Person, error) {
	orgSet := make(map[string]bool, len(orgIDs))
	for _, id := range orgIDs {
		orgSet[id] = true
	}
	var result []*model.Person
	for _, p := range m.persons {
		if p.IsActive && orgSet[p.OrganizationID] {
			result = append(result, p)
		}
	}
	return result, nil
}

// ── Mock TeamRepository ──

type mockTeamRepo struct {
	teams map[string]*model.Team
}

func newMockTeamRepo() *mockTeamRepo {
	return &mockTeamRepo{teams: make(map[string]*model.Team)}
}

func (m *mockTeamRepo) GetByID(_ context.Context, id string) (*model.Team, error) {
	return m.teams[id], nil
}

func (m *mockTeamRepo) ListByOrganization(_ context.Context, orgID string) ([]*model.Team, error) {
	var result []*model.Team
	for _, t := range m.teams {
		if t.OrganizationID == orgID {
			result = append(result, t)
		}
	}
	return result, nil
}

// ── Mock OrganizationRepository ──

type mockOrganizationRepo struct {
	orgs   map[string]*model.Organization
	groups map[string]*model.OrganizationGroup

	listGroupsErr error // 注入 ListGroupsWithReportTime 失败
	listByGrpErr  error // 注入 ListByGroup 失败
}

func newMockOrganizationRepo() *mockOrganizationRepo {
	return &mockOrganizationRepo{
		orgs:   make(map[string]*model.Organization),
		groups: make(map[string]*model.OrganizationGroup),
	}
}

func (m *mockOrganizationRepo) GetByID(_ context.Context, id string) (*model.Organization, error) {
	return m.orgs[id], nil
}

func (m *mockOrganizationRepo) ListByGroup(_ context.Context, groupID string) ([]*model.Organization, error) {
	if m.listByGrpErr != nil {
		return nil, m.listByGrpErr
	}
	var result []*model.Organization
	for _, o := range m.orgs {
		if o.GroupID == groupID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (m *mockOrganizationRepo) GetGroupByID(_ context.Context, id string) (*model.OrganizationGroup, error) {
	return m.groups[id], nil
}

func (m *mockOrganizationRepo) ListGroupsWithReportTime(_ context.Context) ([]*model.OrganizationGroup, error) {
	if m.listGroupsErr != nil {
		return nil, m.listGroupsErr
	}
	var result []*model.OrganizationGroup
	for _, g := range m.groups {
		if g.MorningReportTime != nil {
			result = append(result, g)
		}
	}
	return result, nil
}

func (m *mockOrganizationRepo) UpdateGroupReportTime(_ context.Context, groupID string, t *calendar.TimeOfDay) error {
	if g, ok := m.groups[groupID]; ok {
		g.MorningReportTime = t
	}
	return nil
}

// ── Mock RotationConfigRepository ──

type mockRotationConfigRepo struct {
	configs map[string]*model.RotationConfig // key = rotation_config_id
	nextID  int
}

func newMockRotationConfigRepo() *mockRotationConfigRepo {
	return &mockRotationConfigRepo{configs: make(map[string]*model.RotationConfig)}
}

func (m *mockRotationConfigRepo) Create(_ context.Context, cfg *model.RotationConfig) error {
	if cfg.RotationConfigID == "" {
		m.nextID++
		cfg.RotationConfigID = fmt.Sprintf("rc-%d", m.nextID)
	}
	m.configs[cfg.RotationConfigID] = cfg
	return nil
}

func (m *mockRotationConfigRepo) Update(_ context.Context, cfg *model.RotationConfig) error {
	m.configs[cfg.RotationConfigID] = cfg
	return nil
}

func (m *mockRotationConfigRepo) Delete(_ context.Context, id string) error {
	delete(m.configs, id)
	return nil
}

func (m *mockRotationConfigRepo) GetByID(_ context.Context, id string) (*model.RotationConfig, error) {
	return m.configs[id], nil
}

func (m *mockRotationConfigRepo) GetByTeam(_ context.Context, teamID string) (*model.RotationConfig, error) {
	for _, c := range m.configs {
		if c.TeamID == teamID {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockRotationConfigRepo) ListByOrganization(_ context.Context, orgID string) ([]*model.RotationConfig, error) {
	return m.ListByOrganizations(context.Background(), []string{orgID})
}

func (m *mockRotationConfigRepo) ListByOrganizations(_ context.Context, orgIDs []string) ([]*model.RotationConfig, error) {
	orgSet := make(map[string]bool, len(orgIDs))
	for _, id := range orgIDs {
		orgSet[id] = true
	}
	var result []*model.RotationConfig
	for _, c := range m.configs {
		if orgSet[c.OrganizationID] {
			result = append(result, c)
		}
	}
	return result, nil
}

// ── Mock AbsenceRepository ──

type mockAbsenceRepo struct {
	absences map[string]*model.Absence
	nextID   int
}

func newMockAbsenceRepo() *mockAbsenceRepo {
	return &mockAbsenceRepo{absences: make(map[string]*model.Absence)}
}

func (m *mockAbsenceRepo) Create(_ context.Context, a *model.Absence) error {
	if a.AbsenceID == "" {
		m.nextID++
		a.AbsenceID = fmt.Sprintf("abs-%d", m.nextID)
	}
	m.absences[a.AbsenceID] = a
	return nil
}

func (m *mockAbsenceRepo) CreateBatch(ctx context.Context, list []*model.Absence) error {
	for _, a := range list {
		if err := m.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockAbsenceRepo) Update(_ context.Context, a *model.Absence) error {
	m.absences[a.AbsenceID] = a
	return nil
}

func (m *mockAbsenceRepo) Delete(_ context.Context, id, _ string) error {
	delete(m.absences, id)
	return nil
}

func (m *mockAbsenceRepo) GetByID(_ context.Context, id string) (*model.Absence, error) {
	return m.absences[id], nil
}

func (m *mockAbsenceRepo) ListByPerson(_ context.Context, personID string) ([]*model.Absence, error) {
	var result []*model.Absence
	for _, a := range m.absences {
		if a.PersonID == personID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAbsenceRepo) ListByOrganization(_ context.Context, orgID string) ([]*model.Absence, error) {
	var result []*model.Absence
	for _, a := range m.absences {
		if a.OrganizationID == orgID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAbsenceRepo) ListApprovedOverlapping(_ context.Context, date calendar.Date, orgIDs []string) ([]*model.Absence, error) {
	orgSet := make(map[string]bool, len(orgIDs))
	for _, id := range orgIDs {
		orgSet[id] = true
	}
	var result []*model.Absence
	for _, a := range m.absences {
		if orgSet[a.OrganizationID] && a.Status == model.AbsenceStatusApproved && date.Within(a.StartDate, a.EndDate) {
			result = append(result, a)
		}
	}
	return result, nil
}

// ── Mock PresenceOverrideRepository ──

type mockOverrideRepo struct {
	overrides map[string]*model.PresenceOverride // key = personID|date
}

func newMockOverrideRepo() *mockOverrideRepo {
	return &mockOverrideRepo{overrides: make(map[string]*model.PresenceOverride)}
}

func overrideKey(personID string, date calendar.Date) string {
	return personID + "|" + date.String()
}

func (m *mockOverrideRepo) Upsert(_ context.Context, o *model.PresenceOverride) error {
	m.overrides[overrideKey(o.PersonID, o.Date)] = o
	return nil
}

func (m *mockOverrideRepo) Delete(_ context.Context, personID string, date calendar.Date) error {
	delete(m.overrides, overrideKey(personID, date))
	return nil
}

func (m *mockOverrideRepo) GetByPersonAndDate(_ context.Context, personID string, date calendar.Date) (*model.PresenceOverride, error) {
	return m.overrides[overrideKey(personID, date)], nil
}

func (m *mockOverrideRepo) ListByDateAndOrganizations(_ context.Context, date calendar.Date, orgIDs []string) ([]*model.PresenceOverride, error) {
	orgSet := make(map[string]bool, len(orgIDs))
	for _, id := range orgIDs {
		orgSet[id] = true
	}
	var result []*model.PresenceOverride
	for _, o := range m.overrides {
		if orgSet[o.OrganizationID] && o.Date.Equal(date) {
			result = append(result, o)
		}
	}
	return result, nil
}

// ── Mock PresenceSnapshotRepository ──

type mockSnapshotRepo struct {
	rows      []*model.PresenceSnapshot
	seen      map[string]bool // 模拟唯一索引 uq_snapshot
	createErr error           // 注入 BatchCreate 失败
}

func newMockSnapshotRepo() *mockSnapshotRepo {
	return &mockSnapshotRepo{seen: make(map[string]bool)}
}

func snapshotKey(s *model.PresenceSnapshot) string {
	return s.OrganizationID + "|" + s.PersonID + "|" + s.Date.String() + "|" + s.DefinitionTime.String()
}

func (m *mockSnapshotRepo) BatchCreate(_ context.Context, snapshots []*model.PresenceSnapshot) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	var inserted int64
	for _, s := range snapshots {
		key := snapshotKey(s)
		if m.seen[key] {
			continue
		}
		m.seen[key] = true
		m.rows = append(m.rows, s)
		inserted++
	}
	return inserted, nil
}

func (m *mockSnapshotRepo) ListByOrganizationAndDate(ctx context.Context, orgID string, date calendar.Date) ([]*model.PresenceSnapshot, error) {
	return m.ListByOrganizationsAndDate(ctx, []string{orgID}, date)
}

func (m *mockSnapshotRepo) ListByOrganizationsAndDate(_ context.Context, orgIDs []string, date calendar.Date) ([]*model.PresenceSnapshot, error) {
	orgSet := make(map[string]bool, len(orgIDs))
	for _, id := range orgIDs {
		orgSet[id] = true
	}
	var result []*model.PresenceSnapshot
	for _, s := range m.rows {
		if orgSet[s.OrganizationID] && s.Date.Equal(date) {
			result = append(result, s)
		}
	}
	return result, nil
}

// ── Mock RunLocker ──

type mockRunLocker struct {
	held map[string]bool
	err  error
}

func newMockRunLocker() *mockRunLocker {
	return &mockRunLocker{held: make(map[string]bool)}
}

func (m *mockRunLocker) AcquireRunLock(_ context.Context, triggerTime string, _ time.Duration) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if m.held[triggerTime] {
		return false, nil
	}
	m.held[triggerTime] = true
	return true, nil
}
