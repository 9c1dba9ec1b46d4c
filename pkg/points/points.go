package points

import "math"

const (
	WasteTypeDry = "dry"
	WasteTypeWet = "wet"
)

const (
	defaultDryRate = 15 // 干垃圾 15 分/kg
	defaultWetRate = 10 // 湿垃圾 10 分/kg
)

// Policy 积分换算规则，费率来自配置
type Policy struct {
	DryRate float64
	WetRate float64
}

func DefaultPolicy() Policy {
	return Policy{
		DryRate: defaultDryRate,
		WetRate: defaultWetRate,
	}
}

// Compute 按 floor(weight * rate) 换算积分，向零截断。
// 未知类型不奖励也不报错，返回 0。
func (p Policy) Compute(wasteType string, weight float64) int {
	var rate float64
	switch wasteType {
	case WasteTypeDry:
		rate = p.DryRate
	case WasteTypeWet:
		rate = p.WetRate
	default:
		return 0
	}
	if weight <= 0 {
		return 0
	}
	return int(math.Floor(weight * rate))
}

// ValidWasteType 校验垃圾类型是否在枚举内
func ValidWasteType(wasteType string) bool {
	return wasteType == WasteTypeDry || wasteType == WasteTypeWet
}
