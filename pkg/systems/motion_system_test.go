package systems

import (
	"math"
	"testing"

	"github.com/decker502/robostage/internal/rig"
	"github.com/decker502/robostage/pkg/components"
	"github.com/decker502/robostage/pkg/ecs"
)

// newTestRobot 创建一个带姿势序列的机器人实体
func newTestRobot(em *ecs.EntityManager, poses []components.PoseTarget) (ecs.EntityID, *rig.Figure) {
	figure := rig.New(rig.Config{})
	id := em.CreateEntity()
	em.AddComponent(id, &components.FigureComponent{Rig: figure})
	em.AddComponent(id, &components.PoseComponent{
		Poses:             poses,
		Phase:             components.PhaseIdle,
		TransitionSeconds: 1.0,
		Easing:            "linear",
	})
	return id, figure
}

// TestMotionSystem_TransitionReachesTarget 测试过渡结束后骨架停在目标姿势
func TestMotionSystem_TransitionReachesTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	_, figure := newTestRobot(em, []components.PoseTarget{
		{Name: "test", HeadDeg: 40, BodyDeg: -20, Stretch: 1.1, HoldSeconds: 0, Points: 5},
	})
	system := NewMotionSystem(em)

	// 第一帧进入过渡，之后 1 秒走完
	for i := 0; i < 25; i++ {
		system.Update(0.05)
	}

	if got := figure.HeadAngle(); math.Abs(got-40) > 1e-9 {
		t.Errorf("head angle after transition: got %v, want 40", got)
	}
	if got := figure.BodyAngle(); math.Abs(got+20) > 1e-9 {
		t.Errorf("body angle after transition: got %v, want -20", got)
	}
	if got := figure.LegStretch(); math.Abs(got-1.1) > 1e-9 {
		t.Errorf("stretch after transition: got %v, want 1.1", got)
	}
}

// TestMotionSystem_CompletionAwardsPoints 测试保持阶段结束后按配置记分并推进序列
func TestMotionSystem_CompletionAwardsPoints(t *testing.T) {
	em := ecs.NewEntityManager()
	id, figure := newTestRobot(em, []components.PoseTarget{
		{Name: "first", HeadDeg: 10, Stretch: 1.0, HoldSeconds: 0.5, Points: 10},
		{Name: "second", HeadDeg: -10, Stretch: 1.0, HoldSeconds: 0.5, Points: 25},
	})
	system := NewMotionSystem(em)

	// 跑足够长：两个 1 秒过渡 + 两个 0.5 秒保持
	for i := 0; i < 100; i++ {
		system.Update(0.05)
	}

	if got := figure.Points(); got != 35 {
		t.Errorf("points after sequence: got %d, want 35", got)
	}
	pose, _ := ecs.GetComponent[*components.PoseComponent](em, id)
	if pose.Index != 2 {
		t.Errorf("pose index after sequence: got %d, want 2", pose.Index)
	}
	if pose.CompletedCount != 2 {
		t.Errorf("completed count: got %d, want 2", pose.CompletedCount)
	}
	if pose.Phase != components.PhaseIdle {
		t.Errorf("phase after sequence: got %v, want PhaseIdle", pose.Phase)
	}
}

// TestMotionSystem_OutOfRangeTargetClamped 测试越界姿势目标被骨架限位夹取
func TestMotionSystem_OutOfRangeTargetClamped(t *testing.T) {
	em := ecs.NewEntityManager()
	_, figure := newTestRobot(em, []components.PoseTarget{
		{Name: "wild", HeadDeg: 99999, BodyDeg: -99999, Stretch: 5, HoldSeconds: 0, Points: 1},
	})
	system := NewMotionSystem(em)

	for i := 0; i < 40; i++ {
		system.Update(0.05)
	}

	if got := figure.HeadAngle(); got != rig.HeadMaxDeg {
		t.Errorf("head angle: got %v, want clamped %v", got, rig.HeadMaxDeg)
	}
	if got := figure.BodyAngle(); got != rig.BodyMinDeg {
		t.Errorf("body angle: got %v, want clamped %v", got, rig.BodyMinDeg)
	}
	if got := figure.LegStretch(); got != rig.StretchMax {
		t.Errorf("stretch: got %v, want clamped %v", got, rig.StretchMax)
	}
}

// TestMotionSystem_DeadFigureFrozen 测试机器人死亡后姿势序列冻结
func TestMotionSystem_DeadFigureFrozen(t *testing.T) {
	em := ecs.NewEntityManager()
	id, figure := newTestRobot(em, []components.PoseTarget{
		{Name: "never", HeadDeg: 50, Stretch: 1.0, HoldSeconds: 1, Points: 100},
	})
	system := NewMotionSystem(em)

	figure.ApplyDamage(rig.MaxEnergy + 10)

	for i := 0; i < 40; i++ {
		system.Update(0.05)
	}

	if got := figure.HeadAngle(); got != 0 {
		t.Errorf("dead figure head angle: got %v, want 0", got)
	}
	if got := figure.Points(); got != 0 {
		t.Errorf("dead figure points: got %d, want 0", got)
	}
	pose, _ := ecs.GetComponent[*components.PoseComponent](em, id)
	if pose.Index != 0 || pose.Phase != components.PhaseIdle {
		t.Error("dead figure pose state should not advance")
	}
}

// TestMotionSystem_IdleSway 测试序列播完后的待机摆头保持在限位内
func TestMotionSystem_IdleSway(t *testing.T) {
	em := ecs.NewEntityManager()
	id, figure := newTestRobot(em, nil)
	pose, _ := ecs.GetComponent[*components.PoseComponent](em, id)
	pose.IdleSwayDeg = 15
	pose.IdleSwaySpeed = 2

	system := NewMotionSystem(em)

	moved := false
	for i := 0; i < 60; i++ {
		system.Update(0.05)
		angle := figure.HeadAngle()
		if angle != 0 {
			moved = true
		}
		if angle < -15-1e-9 || angle > 15+1e-9 {
			t.Fatalf("idle sway out of range: %v", angle)
		}
	}
	if !moved {
		t.Error("idle sway should move the head")
	}
}
