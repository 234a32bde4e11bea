package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/dto"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"
)

func setupOverrideService() (OverrideService, *testRepos) {
	repos := newTestRepos()
	seedPerson(repos)
	svc := NewOverrideService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func TestOverrideService_UpsertTwiceUpdates(t *testing.T) {
	svc, repos := setupOverrideService()

	req := &dto.UpsertOverrideRequest{
		PersonID:       "p-1",
		OrganizationID: "org-1",
		Date:           "2024-03-10",
		Status:         "unavailable",
	}
	if _, err := svc.Upsert(context.Background(), req, "admin-1"); err != nil {
		t.Fatalf("首次设置失败: %v", err)
	}

	req.Status = "home"
	if _, err := svc.Upsert(context.Background(), req, "admin-1"); err != nil {
		t.Fatalf("二次设置失败: %v", err)
	}

	// 同一人同一天只应有一条记录，且为最新状态
	if len(repos.override.overrides) != 1 {
		t.Fatalf("应只有 1 条覆盖，实际 %d", len(repos.override.overrides))
	}
	got, _ := svc.Get(context.Background(), "p-1", calendar.NewDate(2024, time.March, 10))
	if got.Status != "home" {
		t.Errorf("应为最新状态 home，实际 %s", got.Status)
	}
}

func TestOverrideService_Get_NotFound(t *testing.T) {
	svc, _ := setupOverrideService()

	_, err := svc.Get(context.Background(), "p-1", calendar.NewDate(2024, time.March, 10))
	if !errors.Is(err, ErrOverrideNotFound) {
		t.Errorf("期望 ErrOverrideNotFound，实际 %v", err)
	}
}

func TestOverrideService_Delete(t *testing.T) {
	svc, _ := setupOverrideService()

	req := &dto.UpsertOverrideRequest{
		PersonID:       "p-1",
		OrganizationID: "org-1",
		Date:           "2024-03-10",
		Status:         "unavailable",
	}
	if _, err := svc.Upsert(context.Background(), req, "admin-1"); err != nil {
		t.Fatalf("设置失败: %v", err)
	}

	date := calendar.NewDate(2024, time.March, 10)
	if err := svc.Delete(context.Background(), "p-1", date); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if err := svc.Delete(context.Background(), "p-1", date); !errors.Is(err, ErrOverrideNotFound) {
		t.Errorf("重复删除应返回 ErrOverrideNotFound，实际 %v", err)
	}
}

func TestOverrideService_Upsert_BadTime(t *testing.T) {
	svc, _ := setupOverrideService()

	st := "25:00"
	_, err := svc.Upsert(context.Background(), &dto.UpsertOverrideRequest{
		PersonID:       "p-1",
		OrganizationID: "org-1",
		Date:           "2024-03-10",
		Status:         "base",
		StartTime:      &st,
	}, "admin-1")
	if !errors.Is(err, ErrInvalidTime) {
		t.Errorf("期望 ErrInvalidTime，实际 %v", err)
	}
}
