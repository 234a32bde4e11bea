package dto

// CreateRotationConfigRequest 创建轮换配置请求
type CreateRotationConfigRequest struct {
	TeamID         string `json:"team_id" binding:"required,uuid"`
	OrganizationID string `json:"organization_id" binding:"required,uuid"`
	StartDate      string `json:"start_date" binding:"required"` // YYYY-MM-DD
	DaysOnBase     int    `json:"days_on_base" binding:"min=0"`
	DaysAtHome     int    `json:"days_at_home" binding:"min=0"`
	ArrivalTime    string `json:"arrival_time,omitempty"`   // HH:MM，缺省 10:00
	DepartureTime  string `json:"departure_time,omitempty"` // HH:MM，缺省 14:00
}

// UpdateRotationConfigRequest 更新轮换配置请求
type UpdateRotationConfigRequest struct {
	StartDate     string `json:"start_date" binding:"required"`
	DaysOnBase    int    `json:"days_on_base" binding:"min=0"`
	DaysAtHome    int    `json:"days_at_home" binding:"min=0"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
	DepartureTime string `json:"departure_time,omitempty"`
}
