package service

import (
	"io"
	"strings"
	"testing"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/model"
)

func icsReader(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

const sampleAbsenceICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:evt-1
SUMMARY:婚礼
DTSTART;VALUE=DATE:20240310
DTEND;VALUE=DATE:20240312
END:VEVENT
BEGIN:VEVENT
UID:evt-2
SUMMARY:体检
DTSTART:20240315T090000Z
DTEND:20240315T120000Z
END:VEVENT
END:VCALENDAR
`

func TestParseAbsenceICS(t *testing.T) {
	absences, skipped, err := ParseAbsenceICS(icsReader(sampleAbsenceICS), "p-1", "org-1")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if skipped != 0 {
		t.Errorf("不应有跳过的事件，实际 %d", skipped)
	}
	if len(absences) != 2 {
		t.Fatalf("应解析出 2 条缺勤，实际 %d", len(absences))
	}

	// 全天事件：DTEND 为排他日期，区间应为 03-10 ~ 03-11
	allDay := absences[0]
	if allDay.StartDate.String() != "2024-03-10" || allDay.EndDate.String() != "2024-03-11" {
		t.Errorf("全天事件区间应为 2024-03-10~2024-03-11，实际 %s~%s", allDay.StartDate, allDay.EndDate)
	}
	if allDay.StartTime != nil || allDay.EndTime != nil {
		t.Errorf("全天事件不应带起止时刻，实际 %v-%v", allDay.StartTime, allDay.EndTime)
	}
	if allDay.Reason != "婚礼" {
		t.Errorf("原因应取自 SUMMARY，实际 %q", allDay.Reason)
	}
	if allDay.Status != model.AbsenceStatusPending || allDay.Source != "ics" {
		t.Errorf("导入记录应为 pending/ics，实际 %s/%s", allDay.Status, allDay.Source)
	}

	// 带时刻事件：单日部分缺勤
	timed := absences[1]
	if timed.StartDate.String() != "2024-03-15" || timed.EndDate.String() != "2024-03-15" {
		t.Errorf("带时刻事件应为单日，实际 %s~%s", timed.StartDate, timed.EndDate)
	}
	if timed.StartTime == nil || timed.StartTime.String() != "09:00" {
		t.Errorf("起始时刻应为 09:00，实际 %v", timed.StartTime)
	}
	if timed.EndTime == nil || timed.EndTime.String() != "12:00" {
		t.Errorf("结束时刻应为 12:00，实际 %v", timed.EndTime)
	}
}

const badDateICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:evt-bad
SUMMARY:无效
DTSTART:not-a-date
END:VEVENT
BEGIN:VEVENT
UID:evt-ok
SUMMARY:请假
DTSTART;VALUE=DATE:20240401
END:VEVENT
END:VCALENDAR
`

// 无法解析的事件计入 skipped，不中断导入；无 DTEND 视为单日
func TestParseAbsenceICS_SkipsInvalidEvents(t *testing.T) {
	absences, skipped, err := ParseAbsenceICS(icsReader(badDateICS), "p-1", "org-1")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if skipped != 1 {
		t.Errorf("应跳过 1 个无效事件，实际 %d", skipped)
	}
	if len(absences) != 1 {
		t.Fatalf("应解析出 1 条缺勤，实际 %d", len(absences))
	}
	if absences[0].StartDate.String() != "2024-04-01" || absences[0].EndDate.String() != "2024-04-01" {
		t.Errorf("无 DTEND 应为单日，实际 %s~%s", absences[0].StartDate, absences[0].EndDate)
	}
}

func TestParseAbsenceICS_BadContent(t *testing.T) {
	if _, _, err := ParseAbsenceICS(icsReader("not an ics file"), "p-1", "org-1"); err == nil {
		t.Error("非 ICS 内容应返回错误")
	}
}
