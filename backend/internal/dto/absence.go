package dto

// CreateAbsenceRequest 创建缺勤记录请求
type CreateAbsenceRequest struct {
	PersonID       string  `json:"person_id" binding:"required,uuid"`
	OrganizationID string  `json:"organization_id" binding:"required,uuid"`
	StartDate      string  `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate        string  `json:"end_date" binding:"required"`
	StartTime      *string `json:"start_time,omitempty"` // HH:MM，空表示从 00:00 起
	EndTime        *string `json:"end_time,omitempty"`   // HH:MM，空表示至 23:59
	Reason         string  `json:"reason,omitempty" binding:"max=200"`
}

// UpdateAbsenceStatusRequest 缺勤审批请求
type UpdateAbsenceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// ImportAbsenceICSRequest 从 ICS 日历订阅导入缺勤请求
type ImportAbsenceICSRequest struct {
	PersonID       string `json:"person_id" binding:"required,uuid"`
	OrganizationID string `json:"organization_id" binding:"required,uuid"`
	FeedURL        string `json:"feed_url" binding:"required,max=500"`
}

// ImportAbsenceICSResponse ICS 导入结果
type ImportAbsenceICSResponse struct {
	Imported int `json:"imported"` // 成功导入的缺勤条数（均为 pending 待审批）
	Skipped  int `json:"skipped"`  // 跳过的事件数（无效日期等）
}
