package model

// 在位状态取值
// 解析器产出前四种；人工修正记录可携带任意状态（如 unavailable），原样透传
const (
	StatusBase      = "base"      // 在基地（整日在位）
	StatusHome      = "home"      // 在家（轮换离位或全天缺勤）
	StatusArrival   = "arrival"   // 到达日（自到达时刻起在位）
	StatusDeparture = "departure" // 离开日（至离开时刻止在位）
)
