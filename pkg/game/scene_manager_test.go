package game

import (
	"testing"

	"github.com/decker502/robostage/internal/scenegraph"
)

// fakeScene 测试用场景
type fakeScene struct {
	name    string
	updated float64
	scene   *scenegraph.Scene
}

func (f *fakeScene) Update(deltaTime float64)   { f.updated += deltaTime }
func (f *fakeScene) Compose() *scenegraph.Scene { return f.scene }

// TestSceneManager_SwitchTo 测试场景切换与透传
func TestSceneManager_SwitchTo(t *testing.T) {
	sm := NewSceneManager()

	if sm.GetCurrentScene() != nil {
		t.Error("manager should start with no active scene")
	}

	// 无场景时 Update/Compose 不崩溃
	sm.Update(0.016)
	if sm.Compose() != nil {
		t.Error("Compose with no scene should return nil")
	}

	s := &fakeScene{name: "a", scene: scenegraph.NewScene()}
	sm.SwitchTo(s)

	if sm.GetCurrentScene() != s {
		t.Error("SwitchTo should set the current scene")
	}
	sm.Update(0.5)
	if s.updated != 0.5 {
		t.Errorf("Update pass-through: got %v, want 0.5", s.updated)
	}
	if sm.Compose() != s.scene {
		t.Error("Compose should return the active scene graph")
	}
}

// TestSceneManager_LoadStage 测试通过工厂函数加载舞台
func TestSceneManager_LoadStage(t *testing.T) {
	sm := NewSceneManager()

	// 工厂未设置时不崩溃，场景保持不变
	sm.LoadStage("main")
	if sm.GetCurrentScene() != nil {
		t.Error("LoadStage without factory should leave no scene")
	}

	var requested string
	sm.SetSceneFactory(func(stageName string) Scene {
		requested = stageName
		return &fakeScene{name: stageName}
	})

	sm.LoadStage("main")
	if requested != "main" {
		t.Errorf("factory argument: got %q, want main", requested)
	}
	if sm.GetCurrentScene() == nil {
		t.Error("LoadStage should switch to the factory-created scene")
	}

	// 工厂返回 nil 时保持旧场景
	current := sm.GetCurrentScene()
	sm.SetSceneFactory(func(string) Scene { return nil })
	sm.LoadStage("broken")
	if sm.GetCurrentScene() != current {
		t.Error("nil factory result should not replace the current scene")
	}
}

// TestGameState_Singleton 测试全局单例与会话状态
func TestGameState_Singleton(t *testing.T) {
	gs := GetGameState()
	if gs == nil {
		t.Fatal("GetGameState returned nil")
	}
	if GetGameState() != gs {
		t.Error("GetGameState should always return the same instance")
	}

	gs.Reset()
	gs.Score = 42
	gs.Tick(0.5)
	gs.Tick(0.25)

	if gs.ElapsedTime != 0.75 {
		t.Errorf("ElapsedTime: got %v, want 0.75", gs.ElapsedTime)
	}

	gs.Reset()
	if gs.Score != 0 || gs.ElapsedTime != 0 || gs.PoseIndex != 0 {
		t.Error("Reset should zero the session state")
	}
}
