package systems

import (
	"testing"

	"github.com/decker502/robostage/internal/rig"
	"github.com/decker502/robostage/internal/scenegraph"
	"github.com/decker502/robostage/pkg/components"
	"github.com/decker502/robostage/pkg/ecs"
)

// newVitalityFixture 创建机器人 + 特效层的测试环境
func newVitalityFixture() (*ecs.EntityManager, *rig.Figure, *scenegraph.Node) {
	em := ecs.NewEntityManager()
	figure := rig.New(rig.Config{})
	id := em.CreateEntity()
	em.AddComponent(id, &components.FigureComponent{Rig: figure})
	effectsRoot := scenegraph.NewNode("effects")
	return em, figure, effectsRoot
}

func addHazard(em *ecs.EntityManager, damage, interval float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.HazardComponent{Name: "test_hazard", Damage: damage, Interval: interval})
	return id
}

func addCharger(em *ecs.EntityManager, heal, interval float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.ChargerComponent{Name: "test_charger", HealAmount: heal, Interval: interval})
	return id
}

// TestVitalitySystem_HazardDamage 测试伤害源按间隔触发
func TestVitalitySystem_HazardDamage(t *testing.T) {
	em, figure, effects := newVitalityFixture()
	addHazard(em, 10, 1.0)
	system := NewVitalitySystem(em, effects)

	// 0.5 秒：未到间隔，不触发
	system.Update(0.5)
	if got := figure.Energy(); got != 100 {
		t.Errorf("energy before first interval: got %v, want 100", got)
	}

	// 再 0.5 秒：触发一次
	system.Update(0.5)
	if got := figure.Energy(); got != 90 {
		t.Errorf("energy after one interval: got %v, want 90", got)
	}

	// 一帧跨两个间隔：触发两次
	system.Update(2.0)
	if got := figure.Energy(); got != 70 {
		t.Errorf("energy after long frame: got %v, want 70", got)
	}
}

// TestVitalitySystem_SparkSpawned 测试每次伤害生成一个限时火花特效
func TestVitalitySystem_SparkSpawned(t *testing.T) {
	em, _, effects := newVitalityFixture()
	addHazard(em, 10, 1.0)
	system := NewVitalitySystem(em, effects)

	system.Update(1.0)

	sparks := ecs.GetEntitiesWith2[*components.LifetimeComponent, *components.NodeComponent](em)
	if len(sparks) != 1 {
		t.Fatalf("spark entities: got %d, want 1", len(sparks))
	}
	if len(effects.Children()) != 1 {
		t.Errorf("effects layer children: got %d, want 1", len(effects.Children()))
	}

	// 特效层为 nil 时不生成火花，但伤害照常
	em2, figure2, _ := newVitalityFixture()
	addHazard(em2, 10, 1.0)
	system2 := NewVitalitySystem(em2, nil)
	system2.Update(1.0)
	if got := figure2.Energy(); got != 90 {
		t.Errorf("energy without effects root: got %v, want 90", got)
	}
	if n := len(ecs.GetEntitiesWith1[*components.LifetimeComponent](em2)); n != 0 {
		t.Errorf("sparks without effects root: got %d, want 0", n)
	}
}

// TestVitalitySystem_ChargerHeals 测试充能台恢复能量且不超过上限
func TestVitalitySystem_ChargerHeals(t *testing.T) {
	em, figure, effects := newVitalityFixture()
	addCharger(em, 4, 1.0)
	system := NewVitalitySystem(em, effects)

	figure.ApplyDamage(10)

	system.Update(1.0)
	if got := figure.Energy(); got != 94 {
		t.Errorf("energy after one charge: got %v, want 94", got)
	}

	// 继续充能，到满后封顶
	for i := 0; i < 10; i++ {
		system.Update(1.0)
	}
	if got := figure.Energy(); got != 100 {
		t.Errorf("energy after overcharge: got %v, want 100", got)
	}
}

// TestVitalitySystem_DeadFigureUntouched 测试死亡机器人既不再受伤也不再被充能
func TestVitalitySystem_DeadFigureUntouched(t *testing.T) {
	em, figure, effects := newVitalityFixture()
	addHazard(em, 10, 1.0)
	addCharger(em, 4, 1.0)
	system := NewVitalitySystem(em, effects)

	figure.ApplyDamage(150)
	if figure.Alive() {
		t.Fatal("figure should be dead")
	}
	energy := figure.Energy()

	for i := 0; i < 5; i++ {
		system.Update(1.0)
	}

	if got := figure.Energy(); got != energy {
		t.Errorf("dead figure energy changed: got %v, want %v", got, energy)
	}
}

// TestVitalitySystem_KillTransition 测试持续伤害最终把机器人打死，死后能量冻结
func TestVitalitySystem_KillTransition(t *testing.T) {
	em, figure, effects := newVitalityFixture()
	addHazard(em, 30, 1.0)
	system := NewVitalitySystem(em, effects)

	for i := 0; i < 10; i++ {
		system.Update(1.0)
	}

	if figure.Alive() {
		t.Fatal("figure should be dead after sustained damage")
	}
	// 100 → 70 → 40 → 10 → -20，死亡后不再扣减
	if got := figure.Energy(); got != -20 {
		t.Errorf("final energy: got %v, want -20 (overshoot preserved, then frozen)", got)
	}
}
