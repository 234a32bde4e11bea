package dto

// UpdateGroupReportTimeRequest 设置营级分组晨报时刻请求
// report_time 为 null 表示清除配置，该分组退出快照任务
type UpdateGroupReportTimeRequest struct {
	ReportTime *string `json:"report_time"` // HH:MM
}
