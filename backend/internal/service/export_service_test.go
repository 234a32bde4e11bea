package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/model"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"
)

func setupExportService() (ExportService, *testRepos) {
	repos := newTestRepos()
	svc := NewExportService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func TestExportService_GroupMissing(t *testing.T) {
	svc, _ := setupExportService()

	_, _, err := svc.ExportGroupPresence(context.Background(), "grp-missing", calendar.NewDate(2024, time.March, 10))
	if !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("期望 ErrGroupNotFound，实际 %v", err)
	}
}

func TestExportService_NoSnapshots(t *testing.T) {
	svc, repos := setupExportService()
	seedSnapshotData(repos)

	_, _, err := svc.ExportGroupPresence(context.Background(), "grp-1", calendar.NewDate(2024, time.March, 10))
	if !errors.Is(err, ErrExportNoSnapshots) {
		t.Errorf("期望 ErrExportNoSnapshots，实际 %v", err)
	}
}

func TestExportService_GeneratesWorkbook(t *testing.T) {
	svc, repos := setupExportService()
	seedSnapshotData(repos)

	date := calendar.NewDate(2024, time.March, 10)
	rt := calendar.NewTimeOfDay(8, 0)
	repos.snapshot.rows = []*model.PresenceSnapshot{
		{
			OrganizationID: "org-1", PersonID: "p-1", Date: date,
			Status: model.StatusBase, StartTime: calendar.Midnight, EndTime: calendar.EndOfDay,
			CapturedAt: time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC), DefinitionTime: rt,
		},
		{
			OrganizationID: "org-1", PersonID: "p-2", Date: date,
			Status: "unavailable", StartTime: calendar.Midnight, EndTime: calendar.EndOfDay,
			CapturedAt: time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC), DefinitionTime: rt,
		},
	}

	buf, filename, err := svc.ExportGroupPresence(context.Background(), "grp-1", date)
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	if filename == "" {
		t.Error("文件名不应为空")
	}

	// 回读校验表结构
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("打开导出文件失败: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("在位报表")
	if err != nil {
		t.Fatalf("读取 Sheet 失败: %v", err)
	}
	// 标题 + 表头 + 2 条数据
	if len(rows) != 4 {
		t.Fatalf("应有 4 行，实际 %d", len(rows))
	}
	if rows[1][0] != "单位" || rows[1][1] != "人员" {
		t.Errorf("表头不符: %v", rows[1])
	}
	if rows[2][1] != "张三" {
		t.Errorf("首行人员应为张三，实际 %s", rows[2][1])
	}
}
