package model

// Organization 单位表 — 对应 organizations
// 多个单位归属一个营级分组（OrganizationGroup）
type Organization struct {
	OrganizationID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"organization_id"`
	Name           string `gorm:"type:varchar(100);not null"                     json:"name"`
	GroupID        string `gorm:"type:uuid;not null;index"                       json:"group_id"`
	BaseModel

	// 关联
	Group *OrganizationGroup `gorm:"foreignKey:GroupID;references:GroupID" json:"group,omitempty"`
}

// TableName 指定表名
func (Organization) TableName() string { return "organizations" }
