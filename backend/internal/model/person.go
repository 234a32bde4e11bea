package model

// Person 人员表 — 对应 persons
// 人员目录由外部平台维护，本服务只读
type Person struct {
	PersonID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"person_id"`
	Name           string `gorm:"type:varchar(100);not null"                     json:"name"`
	TeamID         string `gorm:"type:uuid;not null"                             json:"team_id"`
	OrganizationID string `gorm:"type:uuid;not null;index"                       json:"organization_id"`
	IsActive       bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	// 关联
	Team         *Team         `gorm:"foreignKey:TeamID;references:TeamID"                 json:"team,omitempty"`
	Organization *Organization `gorm:"foreignKey:OrganizationID;references:OrganizationID" json:"organization,omitempty"`
}

// TableName 指定表名
func (Person) TableName() string { return "persons" }
