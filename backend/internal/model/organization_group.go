package model

import "github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"

// OrganizationGroup 营级分组表 — 对应 organization_groups
// 同组单位共用一个晨报时刻（morning_report_time），快照任务据此门控
type OrganizationGroup struct {
	GroupID           string              `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"group_id"`
	Name              string              `gorm:"type:varchar(100);not null"                     json:"name"`
	MorningReportTime *calendar.TimeOfDay `gorm:"type:varchar(5)"                                json:"morning_report_time,omitempty"` // 为空表示未配置，不参与快照
	BaseModel
}

// TableName 指定表名
func (OrganizationGroup) TableName() string { return "organization_groups" }
