package model

import "github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"

// PresenceOverride 人工在位修正表 — 对应 presence_overrides
// 每 (person, date) 至多一条；作为最高优先级信号整体覆盖计算结果
type PresenceOverride struct {
	OverrideID     string              `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"      json:"override_id"`
	PersonID       string              `gorm:"type:uuid;not null;uniqueIndex:uq_override_per_day"  json:"person_id"`
	OrganizationID string              `gorm:"type:uuid;not null;index"                            json:"organization_id"`
	Date           calendar.Date       `gorm:"type:date;not null;uniqueIndex:uq_override_per_day"  json:"date"`
	Status         string              `gorm:"type:varchar(20);not null"                           json:"status"`
	StartTime      *calendar.TimeOfDay `gorm:"type:varchar(5)"                                     json:"start_time,omitempty"`
	EndTime        *calendar.TimeOfDay `gorm:"type:varchar(5)"                                     json:"end_time,omitempty"`
	Source         string              `gorm:"type:varchar(20);not null;default:'manual'"          json:"source"`
	BaseModel

	// 关联
	Person *Person `gorm:"foreignKey:PersonID;references:PersonID" json:"person,omitempty"`
}

// TableName 指定表名
func (PresenceOverride) TableName() string { return "presence_overrides" }
