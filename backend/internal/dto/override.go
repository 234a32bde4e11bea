package dto

// UpsertOverrideRequest 设置人工覆盖请求（同一人同一天重复提交视为更新）
type UpsertOverrideRequest struct {
	PersonID       string  `json:"person_id" binding:"required,uuid"`
	OrganizationID string  `json:"organization_id" binding:"required,uuid"`
	Date           string  `json:"date" binding:"required"` // YYYY-MM-DD
	Status         string  `json:"status" binding:"required,max=20"`
	StartTime      *string `json:"start_time,omitempty"` // HH:MM
	EndTime        *string `json:"end_time,omitempty"`
}
