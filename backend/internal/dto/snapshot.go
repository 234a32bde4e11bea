package dto

// SnapshotGroupResult 单个营级分组的快照执行结果
type SnapshotGroupResult struct {
	GroupID      string `json:"group_id"`
	GroupName    string `json:"group_name"`
	ReportTime   string `json:"report_time"`
	PersonCount  int    `json:"person_count"`
	InsertedRows int64  `json:"inserted_rows"`
	Failed       bool   `json:"failed"`
	Error        string `json:"error,omitempty"`
}

// SnapshotRunResult 快照任务执行汇总
// Locked 为 true 表示同一触发时刻的任务已在别处运行，本次直接返回
type SnapshotRunResult struct {
	TriggerTime   string                `json:"trigger_time"` // HH:MM（服务时区的当前时刻）
	Date          string                `json:"date"`         // YYYY-MM-DD
	MatchedGroups int                   `json:"matched_groups"`
	TotalInserted int64                 `json:"total_inserted"`
	Locked        bool                  `json:"locked,omitempty"`
	Groups        []SnapshotGroupResult `json:"groups,omitempty"`
}
