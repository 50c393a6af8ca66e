package components

// LifetimeComponent 瞬时实体的生命周期
// 用于伤害火花等短暂特效：到期后实体被标记删除，
// 其场景图节点（如有）一并从场景树上摘除
type LifetimeComponent struct {
	CurrentLifetime float64 // 已存活时间（秒）
	MaxLifetime     float64 // 最大存活时间（秒）
	IsExpired       bool    // 是否已过期
}
