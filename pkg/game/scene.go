package game

import "github.com/decker502/robostage/internal/scenegraph"

// Scene represents one composable stage (e.g., the robot stage, a test
// stage). Each scene owns its entities and systems.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Compose returns the scene's renderable graph (nodes, camera, lights).
	// Rendering is external: the caller hands the composition to a renderer
	// or serializes it.
	Compose() *scenegraph.Scene
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 查看工具窗口关闭
//   - 用户通过 OS 命令关闭程序
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}
