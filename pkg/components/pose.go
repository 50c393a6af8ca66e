package components

// PoseTarget 一个命名姿势目标
// 角度与拉伸值允许超出骨架限位范围：骨架 setter 在运行时夹取，
// 配置加载时只告警不拒绝
type PoseTarget struct {
	Name        string  // 姿势名称，用于日志与调试
	HeadDeg     float64 // 目标头部角度（度）
	BodyDeg     float64 // 目标身体角度（度）
	Stretch     float64 // 目标腿部拉伸系数
	HoldSeconds float64 // 到达后保持的秒数
	Points      int     // 完成该姿势获得的分数
}

// PosePhase 姿势执行阶段
type PosePhase int

const (
	PhaseIdle    PosePhase = iota // 无目标姿势，播放待机摆头
	PhaseMoving                   // 正在向目标姿势过渡
	PhaseHolding                  // 已到达目标，保持中
)

// PoseComponent 机器人实体的姿势执行状态
// 纯数据组件，推进逻辑全部在 MotionSystem 中
type PoseComponent struct {
	Poses []PoseTarget // 配置加载的姿势序列
	Index int          // 当前姿势下标，越界表示序列播完

	Phase    PosePhase // 当前执行阶段
	Progress float64   // 过渡进度 0~1
	HoldLeft float64   // 保持阶段剩余秒数

	TransitionSeconds float64 // 单次过渡时长（秒）
	Easing            string  // 缓动函数名，见 utils.EasingByName

	// 过渡起点，进入 PhaseMoving 时采样
	FromHeadDeg float64
	FromBodyDeg float64
	FromStretch float64

	// 待机摆头状态
	IdleSwayDeg    float64 // 摆头幅度（度），0 表示关闭
	IdleSwayClock  float64 // 摆头相位时钟（秒）
	IdleSwaySpeed  float64 // 摆头角速度（弧度/秒）
	CompletedCount int     // 已完成的姿势数，供调试显示
}
