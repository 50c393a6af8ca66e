package game

// GameState 存储全局会话状态
// 这是一个单例，用于管理跨场景和跨工具的全局状态数据
type GameState struct {
	Score       int     // 当前会话分数（机器人得分的镜像）
	ElapsedTime float64 // 会话已运行时间（秒）
	PoseIndex   int     // 当前姿势下标的镜像，供调试显示
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个进程生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = &GameState{}
	}
	return globalGameState
}

// Reset 重置会话状态（切换舞台时调用）
func (gs *GameState) Reset() {
	gs.Score = 0
	gs.ElapsedTime = 0
	gs.PoseIndex = 0
}

// Tick 推进会话时间
func (gs *GameState) Tick(deltaTime float64) {
	gs.ElapsedTime += deltaTime
}
