package components

// HazardComponent 周期性伤害源（如电弧、火面）
// 计时器走满一个间隔就对机器人施加一次伤害
type HazardComponent struct {
	Name     string  // 伤害源名称
	Damage   float64 // 每次触发扣除的能量
	Interval float64 // 触发间隔（秒）
	Timer    float64 // 当前计时（秒），由 VitalitySystem 推进
}

// ChargerComponent 周期性充能台
// 与伤害源对称：计时器走满一个间隔就恢复一次能量
type ChargerComponent struct {
	Name       string  // 充能台名称
	HealAmount float64 // 每次触发恢复的能量
	Interval   float64 // 触发间隔（秒）
	Timer      float64 // 当前计时（秒）
}
