package game

import (
	"log"

	"github.com/decker502/robostage/internal/scenegraph"
)

// SceneFactory 场景工厂函数类型
// 用于按名称创建舞台场景，避免 game 包对 scenes 包的循环依赖
type SceneFactory func(stageName string) Scene

// SceneManager manages the high-level state by controlling which scene is
// active. Only one scene's Update and Compose are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		currentScene: nil,
		sceneFactory: nil,
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadStage 加载指定名称的舞台场景
func (sm *SceneManager) LoadStage(stageName string) {
	log.Printf("[SceneManager] 加载舞台: %s", stageName)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(stageName)
	if newScene != nil {
		sm.SwitchTo(newScene)
		log.Printf("[SceneManager] 成功切换到舞台: %s", stageName)
	} else {
		log.Printf("[SceneManager] 错误: 无法创建舞台场景: %s", stageName)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Compose returns the current scene's renderable graph, or nil when no
// scene is active.
func (sm *SceneManager) Compose() *scenegraph.Scene {
	if sm.currentScene != nil {
		return sm.currentScene.Compose()
	}
	return nil
}
