package dto

// PresenceResolution 单人单日在位解析结果
type PresenceResolution struct {
	PersonID  string `json:"person_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Source    string `json:"source"` // override | absence | rotation | default
}
