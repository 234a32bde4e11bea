package model

// Team 班组表 — 对应 teams
// 每人恰属一个班组；轮换配置按班组定义
type Team struct {
	TeamID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"team_id"`
	Name           string `gorm:"type:varchar(100);not null"                     json:"name"`
	OrganizationID string `gorm:"type:uuid;not null;index"                       json:"organization_id"`
	BaseModel

	// 关联
	Organization *Organization `gorm:"foreignKey:OrganizationID;references:OrganizationID" json:"organization,omitempty"`
}

// TableName 指定表名
func (Team) TableName() string { return "teams" }
